// Package event provides a small synchronous notification bus used to
// decouple review actions from the presentation layer. Handlers run in
// the publisher's goroutine; a panicking handler is isolated and does
// not affect the publisher or other handlers.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a hierarchical event type such as "review.line.marked".
type Topic string

const (
	// TopicSessionStarted fires once a file has been loaded for review.
	TopicSessionStarted Topic = "review.session.started"

	// TopicSessionEnded fires when the review session shuts down.
	TopicSessionEnded Topic = "review.session.ended"

	// TopicLineMarked fires when a line gains, loses or changes a glyph.
	TopicLineMarked Topic = "review.line.marked"

	// TopicLookupReported fires when a lookup produced a report,
	// including empty reports from exhausted sources.
	TopicLookupReported Topic = "review.lookup.reported"
)

// Event carries a topic, a payload and standard metadata.
// Events are immutable once published.
type Event struct {
	Topic    Topic
	Payload  any
	Metadata Metadata
}

// Metadata is attached to every event at publish time.
type Metadata struct {
	ID        string
	Timestamp time.Time
	Source    string
}

// New creates an event with fresh metadata.
func New(topic Topic, payload any, source string) Event {
	return Event{
		Topic:   topic,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.New().String(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// SessionPayload describes a session lifecycle event.
type SessionPayload struct {
	Path      string
	LineCount int
}

// MarkPayload describes a change to a line's glyph.
type MarkPayload struct {
	Line     int
	Glyph    string // empty when the mark was removed
	Previous string // empty when the line was unmarked before
}

// LookupPayload describes the outcome of a lookup.
type LookupPayload struct {
	Query  string
	Source string // empty when every source came back empty
	Text   string
}
