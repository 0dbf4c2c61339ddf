package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	fulfillmentHTTP "flight-fulfillment/internal/fulfillment/delivery/http"
	"flight-fulfillment/internal/middleware"
	"flight-fulfillment/pkg/log"
)

// BreakerReporter exposes the fare API circuit breaker state.
type BreakerReporter interface {
	BreakerState() string
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration

	// Fulfillment domain
	fulfillmentHandler fulfillmentHTTP.Handler
	middleware         middleware.Middleware
	fares              BreakerReporter
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	// TrustedProxies may set X-Forwarded-For / X-Real-IP. Empty trusts no proxy.
	TrustedProxies []string

	// Fulfillment domain
	FulfillmentHandler fulfillmentHTTP.Handler
	Middleware         middleware.Middleware
	Fares              BreakerReporter
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.New(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		readTimeout:        cfg.ReadTimeout,
		writeTimeout:       cfg.WriteTimeout,
		shutdownTimeout:    cfg.ShutdownTimeout,
		fulfillmentHandler: cfg.FulfillmentHandler,
		middleware:         cfg.Middleware,
		fares:              cfg.Fares,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.fulfillmentHandler == nil {
		return errors.New("fulfillment handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
