package events

import (
	"time"

	"github.com/google/uuid"
)

// Event names emitted by the presentation-generation adapter.
const (
	// EventSlideLimitExceeded is recorded when a caller requests more slides
	// than the service supports and the count is clamped down.
	EventSlideLimitExceeded = "slide_limit_exceeded"

	// EventSlideMinimumEnforced is recorded when a caller requests fewer
	// than one slide and the count is raised to the minimum.
	EventSlideMinimumEnforced = "slide_minimum_enforced"

	// EventExportDownloadFailed is recorded when downloading a finished
	// deck's export artifact fails and the adapter falls back to another
	// result path.
	EventExportDownloadFailed = "export_download_failed"

	// EventStorageSkipped is recorded when generated bytes were obtained but
	// the storage collaborator is not configured, so no mirror was written.
	EventStorageSkipped = "storage_upload_skipped"
)

// Event represents a structured operational event emitted by the generation
// pipeline. Fields hold event-specific values (requested/enforced counts,
// error strings) keyed by stable snake_case names.
type Event struct {
	// ID is a unique identifier for this event instance.
	ID uuid.UUID `json:"id"`

	// Name identifies the event type (see the Event* constants).
	Name string `json:"name"`

	// Fields contains event-specific structured data.
	Fields map[string]any `json:"fields,omitempty"`

	// At is the timestamp when the event was created.
	At time.Time `json:"at"`
}

// New creates an Event with the given name and fields, stamped with a fresh
// ID and the current time.
func New(name string, fields map[string]any) Event {
	return Event{
		ID:     uuid.New(),
		Name:   name,
		Fields: fields,
		At:     time.Now(),
	}
}
