package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/patient-monitor-api/internal/errs"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandlerRendersTaxonomy(t *testing.T) {
	g := gin.New()
	g.Use(ErrorHandler(nil), Recovery())
	g.GET("/conflict", func(c *gin.Context) { _ = c.Error(errs.NewConflictError("Email already in use")) })
	g.GET("/plain", func(c *gin.Context) { _ = c.Error(http.ErrHandlerTimeout) })
	g.GET("/panic", func(c *gin.Context) { panic("boom") })

	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/conflict", http.StatusBadRequest, `{"error":"Email already in use"}`},
		{"/plain", http.StatusInternalServerError, `{"error":"Server error"}`},
		{"/panic", http.StatusInternalServerError, `{"error":"Server error"}`},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		require.Equal(t, tc.status, w.Code, tc.path)
		require.JSONEq(t, tc.body, w.Body.String(), tc.path)
	}
}

func TestRequestIDPropagates(t *testing.T) {
	g := gin.New()
	g.Use(RequestID())
	var seen string
	g.GET("/", func(c *gin.Context) { seen = GetRequestID(c) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	g.ServeHTTP(w, req)
	require.Equal(t, "abc-123", seen)
	require.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Len(t, seen, 36)
}

func TestIPLimiterEvictsIdleClients(t *testing.T) {
	clock := time.Unix(1_700_000_000, 0)
	l := newIPLimiter(0.001, 1, time.Minute, func() time.Time { return clock })

	require.True(t, l.allow("10.0.0.1"))
	require.False(t, l.allow("10.0.0.1"))
	require.True(t, l.allow("10.0.0.2"))
	require.Equal(t, 2, l.size())

	clock = clock.Add(30 * time.Second)
	require.True(t, l.allow("10.0.0.3"))
	require.Equal(t, 3, l.size())

	// 10.0.0.1 and .2 have now been idle for more than a minute; .3 has not.
	clock = clock.Add(45 * time.Second)
	require.True(t, l.allow("10.0.0.4"))
	require.Equal(t, 2, l.size())

	// An evicted client starts over with a full bucket.
	require.True(t, l.allow("10.0.0.1"))
}
