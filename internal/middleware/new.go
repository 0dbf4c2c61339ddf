package middleware

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	"flight-fulfillment/pkg/log"
)

var (
	// ErrEmptyUsername is returned when basic auth is enabled without a username.
	ErrEmptyUsername = errors.New("middleware: basic auth username is empty")
	// ErrEmptyHashedPassword is returned when basic auth is enabled without a bcrypt hash.
	ErrEmptyHashedPassword = errors.New("middleware: basic auth hashed password is empty")
)

// Config holds the webhook protection settings.
type Config struct {
	// DisableBasicAuth turns basic auth off. When false, BasicAuthUsername and
	// BasicAuthHashedPassword must be set.
	DisableBasicAuth        bool
	BasicAuthUsername       string
	BasicAuthHashedPassword string // bcrypt hash

	AllowedIPs      []string // exact IPs or CIDR ranges; empty allows all
	RateLimitPerMin int      // per client IP; 0 disables rate limiting
}

type Middleware struct {
	l          log.Logger
	auth       *basicAuth
	allowedIPs []string
	allowedNet []*net.IPNet
	limiter    *rateLimiter
}

// New validates cfg and builds the middleware set.
func New(l log.Logger, cfg Config) (Middleware, error) {
	mw := Middleware{l: l}

	if !cfg.DisableBasicAuth {
		if cfg.BasicAuthUsername == "" {
			return Middleware{}, ErrEmptyUsername
		}
		if cfg.BasicAuthHashedPassword == "" {
			return Middleware{}, ErrEmptyHashedPassword
		}
		mw.auth = &basicAuth{
			username:       cfg.BasicAuthUsername,
			hashedPassword: []byte(cfg.BasicAuthHashedPassword),
		}
	}

	for _, entry := range cfg.AllowedIPs {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			_, ipNet, err := net.ParseCIDR(entry)
			if err != nil {
				return Middleware{}, fmt.Errorf("middleware: invalid CIDR %q: %w", entry, err)
			}
			mw.allowedNet = append(mw.allowedNet, ipNet)
			continue
		}
		if net.ParseIP(entry) == nil {
			return Middleware{}, fmt.Errorf("middleware: invalid IP %q", entry)
		}
		mw.allowedIPs = append(mw.allowedIPs, entry)
	}

	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}

	return mw, nil
}

// Webhook returns the chain protecting the fulfillment route, in order:
// IP allow-list, rate limit, basic auth.
func (m Middleware) Webhook() []gin.HandlerFunc {
	chain := []gin.HandlerFunc{m.AllowIPs(), m.RateLimit()}
	if m.auth != nil {
		chain = append(chain, m.BasicAuth())
	}
	return chain
}
