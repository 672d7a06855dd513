// Package diag carries the out-of-band diagnostic events raised while building
// and querying the metric registry.
package diag

import (
	"context"
	"log/slog"
	"sync"
)

// Kind identifies the condition that produced an event.
type Kind string

const (
	KindUnknownUnit     Kind = "unknown_unit"
	KindUnitOverride    Kind = "unit_override"
	KindUnknownMetric   Kind = "unknown_metric"
	KindDuplicateMetric Kind = "duplicate_metric"
	KindReservedMetric  Kind = "reserved_metric"
)

// Event is a single diagnostic signal.
type Event struct {
	Kind    Kind
	Level   slog.Level
	Subject string // unit or metric name the event is about
	Message string
}

// Sink receives diagnostic events. Implementations must be safe for concurrent use.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Emit calls f(ev).
func (f SinkFunc) Emit(ev Event) { f(ev) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Logger writes events to a structured logger.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a sink backed by logger, or by slog.Default when logger is nil.
func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger}
}

// Emit logs the event at its own level.
func (l *Logger) Emit(ev Event) {
	l.logger.Log(context.Background(), ev.Level, ev.Message,
		"kind", string(ev.Kind),
		"subject", ev.Subject)
}

// Multi fans events out to several sinks in order.
type Multi []Sink

// Emit forwards ev to every sink.
func (m Multi) Emit(ev Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(ev)
		}
	}
}

// Recorder keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Emit appends ev.
func (r *Recorder) Emit(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many recorded events have the given kind.
func (r *Recorder) Count(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
