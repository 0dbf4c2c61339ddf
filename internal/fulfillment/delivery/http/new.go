package http

import (
	"github.com/gin-gonic/gin"

	"flight-fulfillment/internal/fulfillment"
	pkgLog "flight-fulfillment/pkg/log"
)

// Handler serves Dialogflow fulfillment webhooks.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Config tunes the webhook handler.
type Config struct {
	// Debug logs inbound headers and bodies at debug level.
	Debug bool
	// Source is echoed in WebhookResponse.source.
	Source string
}

type handler struct {
	l      pkgLog.Logger
	uc     fulfillment.UseCase
	debug  bool
	source string
}

// New creates a new fulfillment delivery handler.
func New(l pkgLog.Logger, uc fulfillment.UseCase, cfg Config) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		debug:  cfg.Debug,
		source: cfg.Source,
	}
}
