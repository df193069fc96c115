package models

import "github.com/samber/mo"

// MentionEvent is the typed form of a verified Slack app_mention delivery.
// It is produced once at the webhook boundary; pipeline code never touches
// the raw envelope.
type MentionEvent struct {
	// ID is Slack's event_id when the envelope carries one, otherwise a
	// generated ULID. Used for logging and redelivery dedup.
	ID        string
	ChannelID string
	UserID    string
	RawText   string

	// ThreadTS anchors the reply into the originating thread. When absent
	// the reply is posted as a new top-level channel message.
	ThreadTS mo.Option[string]
}
