package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"flight-fulfillment/internal/middleware"
	"flight-fulfillment/pkg/log"
)

func newEngine(t *testing.T, cfg middleware.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw, err := middleware.New(log.NewNop(), cfg)
	require.NoError(t, err)

	r := gin.New()
	r.Use(mw.RequestID(), mw.Metrics())
	handlers := append(mw.Webhook(), func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	r.POST("/webhook/dialogflow", handlers...)
	return r
}

func do(r *gin.Engine, remoteAddr string, setup func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/dialogflow", nil)
	req.RemoteAddr = remoteAddr
	if setup != nil {
		setup(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewValidatesBasicAuth(t *testing.T) {
	_, err := middleware.New(log.NewNop(), middleware.Config{})
	assert.ErrorIs(t, err, middleware.ErrEmptyUsername)

	_, err = middleware.New(log.NewNop(), middleware.Config{BasicAuthUsername: "dialogflow"})
	assert.ErrorIs(t, err, middleware.ErrEmptyHashedPassword)

	_, err = middleware.New(log.NewNop(), middleware.Config{DisableBasicAuth: true, AllowedIPs: []string{"10.0.0.0/33"}})
	assert.Error(t, err)

	_, err = middleware.New(log.NewNop(), middleware.Config{DisableBasicAuth: true, AllowedIPs: []string{"not-an-ip"}})
	assert.Error(t, err)
}

func TestBasicAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	r := newEngine(t, middleware.Config{
		BasicAuthUsername:       "dialogflow",
		BasicAuthHashedPassword: string(hash),
	})

	t.Run("No credentials", func(t *testing.T) {
		w := do(r, "10.0.0.1:1234", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
	})

	t.Run("Wrong user", func(t *testing.T) {
		w := do(r, "10.0.0.1:1234", func(req *http.Request) { req.SetBasicAuth("admin", "s3cret") })
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Wrong password", func(t *testing.T) {
		w := do(r, "10.0.0.1:1234", func(req *http.Request) { req.SetBasicAuth("dialogflow", "nope") })
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Valid credentials", func(t *testing.T) {
		w := do(r, "10.0.0.1:1234", func(req *http.Request) { req.SetBasicAuth("dialogflow", "s3cret") })
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAllowIPs(t *testing.T) {
	r := newEngine(t, middleware.Config{
		DisableBasicAuth: true,
		AllowedIPs:       []string{"192.168.1.10", "10.1.0.0/16"},
	})

	assert.Equal(t, http.StatusOK, do(r, "192.168.1.10:5000", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, "10.1.2.3:5000", nil).Code)
	assert.Equal(t, http.StatusForbidden, do(r, "172.16.0.1:5000", nil).Code)
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of one request.
	r := newEngine(t, middleware.Config{DisableBasicAuth: true, RateLimitPerMin: 10})

	assert.Equal(t, http.StatusOK, do(r, "10.0.0.1:1", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, "10.0.0.1:1", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, "10.0.0.2:1", nil).Code, "other clients keep their own budget")
}

func TestRequestID(t *testing.T) {
	r := newEngine(t, middleware.Config{DisableBasicAuth: true})

	w := do(r, "10.0.0.1:1", func(req *http.Request) { req.Header.Set(middleware.HeaderRequestID, "abc-123") })
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(middleware.HeaderRequestID))

	w = do(r, "10.0.0.1:1", nil)
	assert.Len(t, w.Body.String(), 36)
	assert.Equal(t, w.Body.String(), w.Header().Get(middleware.HeaderRequestID))
}
