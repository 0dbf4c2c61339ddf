package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"flight-fulfillment/pkg/response"
)

type basicAuth struct {
	username       string
	hashedPassword []byte
}

// BasicAuth authenticates requests against the configured username and bcrypt hash.
// Missing credentials get 401, wrong ones 403.
func (m Middleware) BasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.auth == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		u, p, ok := c.Request.BasicAuth()
		if !ok {
			response.Unauthorized(c)
			return
		}

		if u != m.auth.username {
			m.l.Warnf(ctx, "internal.middleware.BasicAuth: unknown user %q", u)
			response.Forbidden(c)
			return
		}

		if err := bcrypt.CompareHashAndPassword(m.auth.hashedPassword, []byte(p)); err != nil {
			m.l.Warnf(ctx, "internal.middleware.BasicAuth: bad password for %q: %v", u, err)
			response.Forbidden(c)
			return
		}

		c.Next()
	}
}
