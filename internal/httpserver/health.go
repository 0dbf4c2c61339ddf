package httpserver

import (
	"github.com/gin-gonic/gin"

	"flight-fulfillment/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Flight fare fulfillment webhook"
	HealthVersion = "1.0.0"
	ServiceName   = "flight-fulfillment"

	breakerOpen = "open"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports not ready while the fare API circuit breaker is open.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Fare API unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	data := gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}

	if srv.fares != nil {
		state := srv.fares.BreakerState()
		data["fares"] = state
		if state == breakerOpen {
			data["status"] = "degraded"
			response.Unavailable(c, data)
			return
		}
	}

	response.OK(c, data)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
