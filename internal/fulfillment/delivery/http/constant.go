package http

const (
	// maxBodyBytes caps the webhook body; Dialogflow requests are a few KiB.
	maxBodyBytes = 1 << 20

	redactedValue = "[REDACTED]"
)

// sensitiveHeaders are masked when debug logging dumps request headers.
var sensitiveHeaders = []string{"Authorization", "Proxy-Authorization", "Cookie"}
