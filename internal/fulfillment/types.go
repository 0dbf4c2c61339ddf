package fulfillment

import "strings"

// Parameter names extracted by the agent.
const (
	ParamGeoCity = "geo-city"
)

// Parameters are the values the agent extracted from the user's utterance.
type Parameters map[string]any

// String returns the trimmed string value of key, or "" when it is absent or not a string.
func (p Parameters) String(key string) string {
	v, ok := p[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

// FulfillInput is one fulfillment request.
type FulfillInput struct {
	Intent       Intent
	IntentName   string // display name as sent by the agent
	Parameters   Parameters
	QueryText    string
	LanguageCode string
	Session      string
}

// FulfillOutput is the result of a fulfillment.
type FulfillOutput struct {
	Intent     Intent
	Utterances []string
}

// Reply accumulates utterances while a handler runs.
type Reply struct {
	utterances []string
}

// Add appends texts in order. Empty strings are dropped.
func (r *Reply) Add(texts ...string) {
	for _, t := range texts {
		if t != "" {
			r.utterances = append(r.utterances, t)
		}
	}
}

// Utterances returns a copy of the accumulated utterances.
func (r *Reply) Utterances() []string {
	out := make([]string, len(r.utterances))
	copy(out, r.utterances)
	return out
}

// Len returns the number of utterances added so far.
func (r *Reply) Len() int {
	return len(r.utterances)
}
