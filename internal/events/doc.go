// Package events provides structured operational events for the generation
// pipeline.
//
// Policy decisions inside the adapter (slide-count clamping, export-download
// fallbacks) are surfaced as Event values through an injected Recorder rather
// than direct logger calls, so tests can assert on emitted events without
// coupling to a logging implementation.
//
// The primary components are:
// - Event: a named event with structured fields and a timestamp
// - Recorder: interface for components that receive events
// - LogRecorder: production Recorder that writes events to slog
// - MemoryRecorder: test Recorder that captures events for assertions
package events
