package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"flight-fulfillment/config"
	_ "flight-fulfillment/docs" // Swagger docs
	fulfillmentHTTP "flight-fulfillment/internal/fulfillment/delivery/http"
	"flight-fulfillment/internal/fulfillment/usecase"
	"flight-fulfillment/internal/httpserver"
	"flight-fulfillment/internal/middleware"
	"flight-fulfillment/pkg/fares"
	"flight-fulfillment/pkg/log"
)

// @title       Flight Fare Fulfillment API
// @description Dialogflow fulfillment webhook answering flight fare questions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting flight fare fulfillment...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Fare API: %s (timeout %s)", cfg.Fares.BaseURL, cfg.Fares.Timeout)
	if cfg.Fulfillment.Debug {
		logger.Warn(ctx, "Fulfillment debug logging enabled: webhook headers and bodies will be logged")
	}

	// 3. Fare API client
	fareClient, err := fares.New(fares.Config{
		BaseURL:            cfg.Fares.BaseURL,
		Timeout:            cfg.Fares.Timeout,
		BreakerMaxFailures: cfg.Fares.BreakerMaxFailures,
		BreakerOpenTimeout: cfg.Fares.BreakerOpenTimeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize fare client: ", err)
		os.Exit(1)
	}

	// 4. Fulfillment domain
	fulfillmentUC := usecase.New(logger, fareClient, nil)
	fulfillmentHandler := fulfillmentHTTP.New(logger, fulfillmentUC, fulfillmentHTTP.Config{
		Debug:  cfg.Fulfillment.Debug,
		Source: cfg.Fulfillment.Source,
	})

	// 5. Webhook protection
	mw, err := middleware.New(logger, middleware.Config{
		DisableBasicAuth:        cfg.Webhook.DisableBasicAuth,
		BasicAuthUsername:       cfg.Webhook.BasicAuthUsername,
		BasicAuthHashedPassword: cfg.Webhook.BasicAuthHashedPassword,
		AllowedIPs:              cfg.Webhook.AllowedIPs,
		RateLimitPerMin:         cfg.Webhook.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize middleware: ", err)
		os.Exit(1)
	}
	if cfg.Webhook.DisableBasicAuth {
		logger.Warn(ctx, "Basic auth disabled for the webhook route")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		ReadTimeout:        cfg.HTTPServer.ReadTimeout,
		WriteTimeout:       cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout:    cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:     cfg.HTTPServer.TrustedProxies,
		FulfillmentHandler: fulfillmentHandler,
		Middleware:         mw,
		Fares:              fareClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	if cfg.HTTPServer.NgrokAPI != "" {
		go announceWebhookURL(ctx, logger, cfg.HTTPServer.NgrokAPI)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
