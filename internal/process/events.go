package process

import (
	"sync"
	"time"
)

// Stream identifies which child stream produced a line of output.
type Stream string

const (
	StreamStdout Stream = "stdout"
	StreamStderr Stream = "stderr"
)

// Event is one line of live output from a running command. Operation is the
// caller-supplied label ("install", "init") the UI uses to route the line.
type Event struct {
	Operation string
	Stream    Stream
	Line      string
	Time      time.Time
}

// Sink receives output events during a run. The two drain goroutines emit
// concurrently, so implementations must be safe for concurrent use. Emit is
// best-effort: a sink that cannot accept an event drops it.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Emit(ev Event) { f(ev) }

// ChanSink buffers events on a channel for a consumer loop. When the buffer
// is full, or after Close, Emit drops the event rather than blocking the
// drain goroutines.
type ChanSink struct {
	mu     sync.Mutex
	ch     chan Event
	closed bool
}

func NewChanSink(capacity int) *ChanSink {
	if capacity <= 0 {
		capacity = 256
	}
	return &ChanSink{ch: make(chan Event, capacity)}
}

func (s *ChanSink) Emit(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- ev:
	default:
	}
}

func (s *ChanSink) Events() <-chan Event { return s.ch }

// Close ends the consumer's range loop. Safe to call once all runs using
// this sink have returned; later Emit calls are dropped.
func (s *ChanSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}
