package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	fulfillmentHTTP "flight-fulfillment/internal/fulfillment/delivery/http"
	"flight-fulfillment/internal/model"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.HandleMethodNotAllowed = true
	srv.gin.Use(gin.Recovery(), srv.middleware.RequestID(), srv.middleware.Metrics())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the Dialogflow webhook behind the webhook middleware chain.
func (srv HTTPServer) registerDomainRoutes() {
	fulfillmentHTTP.RegisterRoutes(srv.gin, srv.fulfillmentHandler, srv.middleware.Webhook()...)
	srv.l.Infof(context.Background(), "Dialogflow webhook route registered at POST /webhook/dialogflow")
}
