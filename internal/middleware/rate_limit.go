package middleware

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/patient-monitor-api/internal/metrics"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client's bucket survives without requests.
const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// ipLimiter keeps one token bucket per key and drops buckets idle for longer
// than idleTTL, at most once per idleTTL.
type ipLimiter struct {
	rps       float64
	burst     int
	idleTTL   time.Duration
	now       func() time.Time
	visitors  sync.Map // map[string]*visitor
	lastSweep atomic.Int64
}

func newIPLimiter(rps float64, burst int, idleTTL time.Duration, now func() time.Time) *ipLimiter {
	l := &ipLimiter{rps: rps, burst: burst, idleTTL: idleTTL, now: now}
	l.lastSweep.Store(now().UnixNano())
	return l
}

func (l *ipLimiter) allow(key string) bool {
	now := l.now()
	v, ok := l.visitors.Load(key)
	if !ok {
		v, _ = l.visitors.LoadOrStore(key, &visitor{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)})
	}
	vis := v.(*visitor)
	vis.lastSeen.Store(now.UnixNano())
	l.sweep(now)
	return vis.limiter.AllowN(now, 1)
}

func (l *ipLimiter) sweep(now time.Time) {
	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(l.idleTTL) || !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	cutoff := now.Add(-l.idleTTL).UnixNano()
	l.visitors.Range(func(k, v any) bool {
		if v.(*visitor).lastSeen.Load() < cutoff {
			l.visitors.Delete(k)
		}
		return true
	})
}

func (l *ipLimiter) size() int {
	n := 0
	l.visitors.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

// RateLimit enforces a token-bucket limit per client IP. rps <= 0 disables
// limiting entirely.
func RateLimit(rps float64, burst int, m *metrics.Metrics) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := newIPLimiter(rps, burst, limiterIdleTTL, time.Now)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !limiter.allow(ip) {
			c.Header("Retry-After", "1")
			if m != nil {
				m.RateLimitRejected.Inc()
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		if m != nil {
			m.RateLimitAllowed.Inc()
		}
		c.Next()
	}
}
