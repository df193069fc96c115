package models

// PostOutcome is the terminal record of one mention event's trip through the
// pipeline. It exists for logging and alerting only; nothing persists it.
type PostOutcome struct {
	EventID string
	Success bool

	// Error describes the failure, empty on success.
	Error string

	// Timestamp is the Slack ts of the posted reply, empty on failure.
	Timestamp string
}
