package middleware

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"flight-fulfillment/pkg/response"
)

// AllowIPs rejects clients outside the allow-list with 403.
func (m Middleware) AllowIPs() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !m.ipAllowed(ip) {
			m.l.Warnf(c.Request.Context(), "internal.middleware.AllowIPs: IP %s not whitelisted", ip)
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// RateLimit rejects clients above the per-minute budget with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		if err := m.limiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

func (m Middleware) ipAllowed(ip string) bool {
	if len(m.allowedIPs) == 0 && len(m.allowedNet) == 0 {
		return true
	}

	for _, allowed := range m.allowedIPs {
		if ip == allowed {
			return true
		}
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, ipNet := range m.allowedNet {
		if ipNet.Contains(parsed) {
			return true
		}
	}
	return false
}

// rateLimiter keeps one token bucket per key; idle keys expire.
type rateLimiter struct {
	mu       sync.Mutex // serialises lookup-or-create of a key's bucket
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	if !rl.limiter(key).Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}

func (rl *rateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}
