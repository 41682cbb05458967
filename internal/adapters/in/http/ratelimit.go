package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// LoginRateLimiter throttles login attempts per client IP so a stolen
// password list cannot be tried at full speed.
type LoginRateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*clientLimiter
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewLoginRateLimiter allows limit attempts per second with the given burst
// per client IP.
func NewLoginRateLimiter(limit rate.Limit, burst int) *LoginRateLimiter {
	return &LoginRateLimiter{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*clientLimiter),
	}
}

// Middleware rejects over-limit requests with 429.
func (l *LoginRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, errorBody{
					Message: "too many login attempts, slow down",
				})
			}
			return next(c)
		}
	}
}

func (l *LoginRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, found := l.limiters[ip]
	if !found {
		entry = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastAccess = time.Now()

	// Opportunistic cleanup keeps the map from growing unbounded.
	if len(l.limiters) > 1024 {
		cutoff := time.Now().Add(-10 * time.Minute)
		for key, stale := range l.limiters {
			if stale.lastAccess.Before(cutoff) {
				delete(l.limiters, key)
			}
		}
	}

	return entry.limiter.Allow()
}
