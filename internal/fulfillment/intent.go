package fulfillment

// Intent is the closed set of intents this webhook fulfills.
type Intent int

const (
	IntentFallback Intent = iota
	IntentWelcome
	IntentFlightInfo
)

// Display names configured on the Dialogflow agent.
const (
	IntentNameWelcome    = "Default Welcome Intent"
	IntentNameFallback   = "Default Fallback Intent"
	IntentNameFlightInfo = "GetFlightInfo"
)

// Intents lists every Intent value.
var Intents = []Intent{IntentFallback, IntentWelcome, IntentFlightInfo}

// ParseIntent maps an intent display name to its Intent.
// Names that are not registered map to IntentFallback.
func ParseIntent(name string) Intent {
	switch name {
	case IntentNameWelcome:
		return IntentWelcome
	case IntentNameFlightInfo:
		return IntentFlightInfo
	default:
		return IntentFallback
	}
}

// String returns the display name of i.
func (i Intent) String() string {
	switch i {
	case IntentWelcome:
		return IntentNameWelcome
	case IntentFlightInfo:
		return IntentNameFlightInfo
	default:
		return IntentNameFallback
	}
}
