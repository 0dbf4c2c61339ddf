package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"flight-fulfillment/pkg/log"
)

const (
	ngrokAttempts = 10
	ngrokInterval = 3 * time.Second
	webhookPath   = "/webhook/dialogflow"
)

// ngrokTunnels is the body of GET /api/tunnels on the ngrok agent.
type ngrokTunnels struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// announceWebhookURL logs the public fulfillment URL to paste into the
// Dialogflow console when the service runs behind a local ngrok agent.
func announceWebhookURL(ctx context.Context, l log.Logger, ngrokAPI string) {
	publicURL, err := detectNgrokURL(ctx, &http.Client{Timeout: 5 * time.Second}, ngrokAPI, ngrokAttempts, ngrokInterval)
	if err != nil {
		l.Warnf(ctx, "ngrok: public URL not detected: %v", err)
		return
	}
	l.Infof(ctx, "Dialogflow fulfillment URL: %s%s", publicURL, webhookPath)
}

// detectNgrokURL polls the ngrok agent API until a tunnel appears.
// HTTPS tunnels win over plain ones.
func detectNgrokURL(ctx context.Context, client *http.Client, ngrokAPI string, attempts int, interval time.Duration) (string, error) {
	endpoint := strings.TrimRight(ngrokAPI, "/") + "/api/tunnels"

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(interval):
			}
		}

		publicURL, err := fetchTunnelURL(ctx, client, endpoint)
		if err == nil {
			return publicURL, nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("no tunnel after %d attempts: %w", attempts, lastErr)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	var body ngrokTunnels
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range body.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(body.Tunnels) > 0 {
		return body.Tunnels[0].PublicURL, nil
	}
	return "", fmt.Errorf("ngrok has no active tunnels")
}
