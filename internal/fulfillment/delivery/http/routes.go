package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the webhook at POST /webhook/dialogflow and POST /.
// mw runs before the handler on both routes.
func RegisterRoutes(r gin.IRoutes, h Handler, mw ...gin.HandlerFunc) {
	chain := append(append([]gin.HandlerFunc{}, mw...), h.HandleWebhook)
	r.POST("/webhook/dialogflow", chain...)
	r.POST("/", chain...)
}
