package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flight-fulfillment/pkg/response"
)

// HandleWebhook godoc
// @Summary     Dialogflow fulfillment webhook
// @Description Fulfills the matched intent and replies with text messages.
// @Tags        Fulfillment
// @Accept      json
// @Produce     json
// @Param       body body     object true "Dialogflow v2 WebhookRequest"
// @Success     200  {object} object "Dialogflow v2 WebhookResponse"
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /webhook/dialogflow [POST]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWebhookReq(c)
	if err != nil {
		h.l.Warnf(ctx, "fulfillment handler: rejected request: %v", err)
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.l.Warnf(ctx, "fulfillment handler: rejected request: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Fulfill(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "fulfillment handler: uc.Fulfill: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newWebhookResp(output))
}
