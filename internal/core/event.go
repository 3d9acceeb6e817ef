package core

import "sync"

type EventKind string

const (
	EventCreated  EventKind = "created"
	EventStart    EventKind = "start"
	EventReturn   EventKind = "return"
	EventComplete EventKind = "complete"
)

// Event is a timestamped scheduling event. Burst is the burst at creation,
// the slice length for start events and the remaining burst on return.
type Event struct {
	Kind      EventKind
	Algorithm string
	PID       int
	Time      int
	Burst     int
	Quantum   bool
}

// EventSink receives events from the generator and the scheduler worker
// concurrently, so implementations must be safe for concurrent use.
type EventSink interface {
	Emit(e Event)
}

// EventLog keeps every emitted event in memory.
type EventLog struct {
	mu     sync.Mutex
	events []Event
}

func (l *EventLog) Emit(e Event) {
	l.mu.Lock()
	l.events = append(l.events, e)
	l.mu.Unlock()
}

func (l *EventLog) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Filter returns the logged events of the given kind for one algorithm.
func (l *EventLog) Filter(algorithm string, kind EventKind) []Event {
	var out []Event
	for _, e := range l.Events() {
		if e.Algorithm == algorithm && e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

type MultiSink []EventSink

func (m MultiSink) Emit(e Event) {
	for _, s := range m {
		s.Emit(e)
	}
}

type DiscardSink struct{}

func (DiscardSink) Emit(Event) {}
