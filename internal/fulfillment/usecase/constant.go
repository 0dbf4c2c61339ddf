package usecase

// Log prefixes
const (
	LogPrefixFulfill    = "internal.fulfillment.usecase.Fulfill"
	LogPrefixFlightInfo = "internal.fulfillment.usecase.flightInfo"
)

// Welcome and fallback replies
const (
	MsgWelcome       = "Welcome to my agent!"
	MsgNotUnderstood = "I didn't understand"
	MsgTryAgain      = "I'm sorry, can you try again?"
)

// Flight info replies
const (
	MsgAskDestination   = "Which city would you like to fly to?"
	MsgNotServedFormat  = "Sorry, we don't fly to %s yet."
	MsgLookupFailFormat = "Sorry, I couldn't look up flights to %s right now. Please try again later."
)

// acknowledgements mask the fare lookup latency.
var acknowledgements = []string{
	"Sure, let me check",
	"Checking",
	"Let me see",
	"Mmmh give me one sec",
	"Nice place! Let me check",
}

// fareTemplates render a quote. Arguments: destination, fare, airline.
var fareTemplates = []func(destination, fare, airline string) string{
	func(d, f, a string) string { return "You can fly to " + d + " for just " + f + " pounds with " + a },
	func(d, f, a string) string { return "Enjoy " + d + " for just " + f + " pounds with " + a },
	func(_, f, a string) string { return f + " pounds with " + a },
}
