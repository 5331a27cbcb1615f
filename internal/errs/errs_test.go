package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	cause := errors.New("connection refused")

	got := From(cause)
	require.Equal(t, KindStore, got.Kind)
	require.Equal(t, http.StatusInternalServerError, got.Status)
	require.Equal(t, MsgServerError, got.Message)
	require.ErrorIs(t, got, cause)

	wrapped := fmt.Errorf("register: %w", NewConflictError(MsgEmailInUse))
	got = From(wrapped)
	require.Equal(t, KindConflict, got.Kind)
	require.Equal(t, http.StatusBadRequest, got.Status)
}

func TestAuthErrorIsUndifferentiated(t *testing.T) {
	a, b := NewAuthError(), NewAuthError()
	require.Equal(t, a.Message, b.Message)
	require.Equal(t, http.StatusBadRequest, a.Status)
	require.Equal(t, "Invalid credentials", a.Error())
}
