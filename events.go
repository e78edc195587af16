// events.go - bounded non-blocking input-event pumping, §5/§6

package main

// Event is one notification the Scheduler converts into either a
// Memory.NotifyInterrupt call or a loop-exit signal.
type Event struct {
	Kind Interrupt
	Quit bool
}

// EventSource is the narrow door external input-event pumping comes
// through. Poll must never block: the Scheduler calls it once at the
// start of every fast-clock tick (§5).
type EventSource interface {
	Poll() []Event
}

// ChannelEventSource is a bounded, non-blocking EventSource backed by a
// buffered channel. Producers (a terminal reader, a GUI callback) call
// Push; Poll drains whatever is currently queued without blocking.
type ChannelEventSource struct {
	events chan Event
}

// NewChannelEventSource returns a ChannelEventSource with the given
// buffer capacity. A full buffer causes Push to drop the event rather
// than block, keeping the source safe to call from any producer
// goroutine without risking a Scheduler stall.
func NewChannelEventSource(capacity int) *ChannelEventSource {
	if capacity <= 0 {
		capacity = 1
	}
	return &ChannelEventSource{events: make(chan Event, capacity)}
}

// Push enqueues an event, dropping it silently if the buffer is full.
func (s *ChannelEventSource) Push(evt Event) {
	select {
	case s.events <- evt:
	default:
	}
}

// Poll drains every event currently queued without blocking.
func (s *ChannelEventSource) Poll() []Event {
	var drained []Event
	for {
		select {
		case evt := <-s.events:
			drained = append(drained, evt)
		default:
			return drained
		}
	}
}

// NullEventSource never produces events; useful for headless runs and
// tests that drive the CPU directly without a Scheduler loop.
type NullEventSource struct{}

func (NullEventSource) Poll() []Event { return nil }
