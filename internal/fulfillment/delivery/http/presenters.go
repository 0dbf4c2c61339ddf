package http

import (
	"encoding/json"
	"fmt"
	"strings"

	dialogflow "google.golang.org/api/dialogflow/v2"

	"flight-fulfillment/internal/fulfillment"
)

// --- Request DTOs ---

type webhookReq dialogflow.GoogleCloudDialogflowV2WebhookRequest

func (r webhookReq) validate() error {
	if r.QueryResult == nil {
		return fmt.Errorf("%w: queryResult is required", fulfillment.ErrInvalidRequest)
	}
	return nil
}

// intentName returns the matched intent's display name, or "" when none matched.
func (r webhookReq) intentName() string {
	if r.QueryResult == nil || r.QueryResult.Intent == nil {
		return ""
	}
	return r.QueryResult.Intent.DisplayName
}

func (r webhookReq) toInput() (fulfillment.FulfillInput, error) {
	qr := r.QueryResult

	params := fulfillment.Parameters{}
	if len(qr.Parameters) > 0 {
		if err := json.Unmarshal(qr.Parameters, &params); err != nil {
			return fulfillment.FulfillInput{}, fmt.Errorf("%w: parameters: %v", fulfillment.ErrInvalidRequest, err)
		}
	}

	name := r.intentName()
	return fulfillment.FulfillInput{
		Intent:       fulfillment.ParseIntent(name),
		IntentName:   name,
		Parameters:   params,
		QueryText:    qr.QueryText,
		LanguageCode: qr.LanguageCode,
		Session:      r.Session,
	}, nil
}

// --- Response DTOs ---

// newWebhookResp renders utterances as one text message each, plus a
// newline-joined fulfillmentText for clients that only read that field.
func (h *handler) newWebhookResp(output fulfillment.FulfillOutput) *dialogflow.GoogleCloudDialogflowV2WebhookResponse {
	messages := make([]*dialogflow.GoogleCloudDialogflowV2IntentMessage, 0, len(output.Utterances))
	for _, u := range output.Utterances {
		messages = append(messages, &dialogflow.GoogleCloudDialogflowV2IntentMessage{
			Text: &dialogflow.GoogleCloudDialogflowV2IntentMessageText{
				Text: []string{u},
			},
		})
	}

	return &dialogflow.GoogleCloudDialogflowV2WebhookResponse{
		FulfillmentText:     strings.Join(output.Utterances, "\n"),
		FulfillmentMessages: messages,
		Source:              h.source,
	}
}
