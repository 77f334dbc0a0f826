package v1

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiterCap bounds how many per-client limiters are kept before the
// table is reset. Login traffic is low enough that a full reset is cheaper
// than tracking last-seen times.
const clientLimiterCap = 1024

// rateLimiter hands out one token bucket per client IP.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newRateLimiter(perMinute, burst int) *rateLimiter {
	return &rateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

func (l *rateLimiter) allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[clientIP]
	if !ok {
		if len(l.limiters) >= clientLimiterCap {
			l.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[clientIP] = limiter
	}

	return limiter.Allow()
}

// LoginRateLimitMiddleware throttles login attempts per client IP with a
// token bucket refilled at perMinute tokens a minute.
func LoginRateLimitMiddleware(perMinute, burst int) gin.HandlerFunc {
	limiter := newRateLimiter(perMinute, burst)

	return func(ctx *gin.Context) {
		if !limiter.allow(ctx.ClientIP()) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Detail: "too many attempts, try again later",
			})
			return
		}
		ctx.Next()
	}
}
