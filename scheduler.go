// scheduler.go - master-clock pacing, interrupt dispatch, display cadence

package main

import (
	"sync"
	"time"
)

// fastClockPeriod is the period of the Scheduler's fast-clock tick, §4.4.
const fastClockPeriod = 119 * time.Nanosecond

// interruptServiceCycles is the master-clock cost of dispatching an
// interrupt, §4.4 step 5 (20 master-clock cycles = 5 machine cycles).
const interruptServiceCycles = 20

// machineCycleClocks is the number of master-clock cycles in one machine
// cycle at normal speed (§3, GLOSSARY).
const machineCycleClocks = 4

// Scheduler glues the CPU and Memory together per §4.4/§5: a single
// advancing agent that, on each fast-clock tick, either services a
// pending interrupt, executes one instruction, or waits out the
// remaining cycles of the instruction in flight; every second tick it
// asks the display sink to render one frame slice.
type Scheduler struct {
	CPU    *CPU
	Memory *Memory
	Sink   Sink
	Events EventSource

	waitCycles int
	tickCount  uint64

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewScheduler wires a CPU, Memory, display Sink and input EventSource
// into a single pacing loop.
func NewScheduler(cpu *CPU, mem *Memory, sink Sink, events EventSource) *Scheduler {
	return &Scheduler{CPU: cpu, Memory: mem, Sink: sink, Events: events}
}

// Run drives the Scheduler synchronously until the event source signals
// quit or the CPU raises a DecodeFault, whichever comes first. It honors
// the monotonic-clock pacing and single-tick-boundary cancellation
// semantics of §5.
func (s *Scheduler) Run() error {
	ticker := time.NewTicker(fastClockPeriod)
	defer ticker.Stop()

	for range ticker.C {
		cont, err := s.tick()
		if err != nil {
			log.WithError(err).Error("scheduler: fatal decode fault, stopping")
			return err
		}
		if !cont {
			return nil
		}
	}
	return nil
}

// StartAsync runs the Scheduler in a background goroutine, mirroring the
// mutex+done-channel lifecycle idiom used elsewhere in this codebase for
// goroutine-backed components. Stop blocks until the loop has actually
// exited.
func (s *Scheduler) StartAsync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go func() {
		defer close(s.doneCh)
		ticker := time.NewTicker(fastClockPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopCh:
				return
			case <-ticker.C:
				cont, err := s.tick()
				if err != nil {
					log.WithError(err).Error("scheduler: fatal decode fault, stopping")
					return
				}
				if !cont {
					return
				}
			}
		}
	}()
}

// Stop signals the async loop to exit at its next tick boundary and
// waits for it to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	doneCh := s.doneCh
	s.mu.Unlock()

	<-doneCh
}

// tick performs one fast-clock tick: poll the event source, then either
// wait out an in-flight instruction, service a pending interrupt, or
// execute one instruction; every second tick, render a display slice,
// unless the CPU is STOPped, in which case the display stays frozen too.
func (s *Scheduler) tick() (bool, error) {
	for _, evt := range s.Events.Poll() {
		if evt.Quit {
			return false, nil
		}
		s.Memory.NotifyInterrupt(evt.Kind)
	}

	if s.waitCycles > 0 {
		s.waitCycles--
	} else if err := s.advance(); err != nil {
		return false, err
	}

	s.tickCount++
	if s.tickCount%2 == 0 && !s.CPU.Stopped {
		s.Sink.Update(s.Memory)
	}
	return true, nil
}

// advance services a pending interrupt if IME allows it, otherwise steps
// the instruction engine once, and bills the resulting wait-cycle count.
func (s *Scheduler) advance() error {
	if s.CPU.IMEEnabled {
		if kind, ok := s.Memory.NextPendingInterrupt(); ok {
			s.CPU.ServiceInterrupt(s.Memory, kind)
			s.waitCycles = interruptServiceCycles - 1
			return nil
		}
	}

	before := s.CPU.Cycles
	if err := s.CPU.Step(s.Memory); err != nil {
		return err
	}
	machineCycles := s.CPU.Cycles - before
	if machineCycles > 0 {
		s.waitCycles = int(machineCycles)*machineCycleClocks - 1
	}
	return nil
}
