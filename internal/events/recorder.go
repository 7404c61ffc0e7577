package events

import (
	"context"
	"log/slog"
	"sync"
)

// Recorder receives structured events from the generation pipeline.
// Implementations must be safe for concurrent use.
type Recorder interface {
	// Record accepts the given event. Recording is best-effort; recorders
	// must not fail the operation that emitted the event.
	Record(ctx context.Context, event Event)
}

// LogRecorder writes events to a structured logger at WARN level.
// It is the production Recorder: every adapter event represents a policy
// deviation or fallback worth operator attention.
type LogRecorder struct {
	logger *slog.Logger
}

// NewLogRecorder creates a LogRecorder backed by the given logger.
func NewLogRecorder(logger *slog.Logger) *LogRecorder {
	return &LogRecorder{
		logger: logger.With("component", "event_recorder"),
	}
}

// Record logs the event name and its fields as structured attributes.
func (r *LogRecorder) Record(ctx context.Context, event Event) {
	attrs := make([]any, 0, 2*len(event.Fields)+2)
	attrs = append(attrs, "event_id", event.ID.String())
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	r.logger.WarnContext(ctx, event.Name, attrs...)
}

// MemoryRecorder captures events in memory for test assertions.
type MemoryRecorder struct {
	mu     sync.Mutex
	events []Event
}

// NewMemoryRecorder creates an empty MemoryRecorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// Record appends the event to the in-memory list.
func (r *MemoryRecorder) Record(_ context.Context, event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of all recorded events in emission order.
func (r *MemoryRecorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Named returns the recorded events with the given name, in emission order.
func (r *MemoryRecorder) Named(name string) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}
