// input_terminal.go - raw-stdin joypad adapter, grounded on terminal_host.go

package main

import (
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// TerminalInput reads raw stdin in a goroutine and turns keypresses into
// joypad interrupt notifications on a ChannelEventSource, plus a quit
// event on Ctrl-C. Only instantiated in main.go for interactive use -
// never in tests, which drive EventSource directly.
type TerminalInput struct {
	events  *ChannelEventSource
	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once

	fd           int
	oldTermState *term.State
}

// NewTerminalInput creates a host adapter that feeds joypad events into
// events.
func NewTerminalInput(events *ChannelEventSource) *TerminalInput {
	return &TerminalInput{
		events: events,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts stdin into raw non-blocking mode and begins reading in a
// goroutine. Call Stop to restore stdin.
func (h *TerminalInput) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		log.WithError(err).Warn("input_terminal: failed to set raw mode")
		close(h.done)
		return
	}
	h.oldTermState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		log.WithError(err).Warn("input_terminal: failed to set nonblocking stdin")
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
		close(h.done)
		return
	}

	go func() {
		defer close(h.done)
		buf := make([]byte, 1)

		for {
			select {
			case <-h.stopCh:
				return
			default:
			}

			n, err := syscall.Read(h.fd, buf)
			if n > 0 {
				h.routeKey(buf[0])
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
}

// routeKey translates one raw input byte into an Event and pushes it.
// Ctrl-C (0x03) requests a clean shutdown; any other byte is treated as a
// joypad press, which this core surfaces as a single joypad interrupt
// per §6 ("Input source: produces interrupt kinds via notify_interrupt").
func (h *TerminalInput) routeKey(b byte) {
	if b == 0x03 {
		h.events.Push(Event{Quit: true})
		return
	}
	h.events.Push(Event{Kind: InterruptJoypad})
}

// Stop terminates the stdin reading goroutine and restores stdin.
func (h *TerminalInput) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.oldTermState != nil {
		_ = syscall.SetNonblock(h.fd, false)
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
