package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"flight-fulfillment/internal/fulfillment"
)

// processWebhookReq reads and validates the Dialogflow webhook body.
func (h *handler) processWebhookReq(c *gin.Context) (webhookReq, error) {
	ctx := c.Request.Context()

	var req webhookReq
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		return req, fmt.Errorf("%w: %v", fulfillment.ErrInvalidRequest, err)
	}

	if h.debug {
		headers, _ := json.Marshal(redactHeaders(c.Request.Header))
		h.l.Debugf(ctx, "Dialogflow Request headers: %s", headers)
		h.l.Debugf(ctx, "Dialogflow Request body: %s", body)
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("%w: %v", fulfillment.ErrInvalidRequest, err)
	}
	return req, req.validate()
}

// redactHeaders returns a copy of hdr with credential headers masked.
func redactHeaders(hdr http.Header) http.Header {
	out := hdr.Clone()
	for _, name := range sensitiveHeaders {
		if _, ok := out[name]; ok {
			out[name] = []string{redactedValue}
		}
	}
	return out
}
