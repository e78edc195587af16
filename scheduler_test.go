package main

import "testing"

func TestSchedulerExecutesOneInstructionPerTickBudget(t *testing.T) {
	mem := NewMemory()
	cpu := NewCPU()
	sink := NewHeadlessSink()
	sched := NewScheduler(cpu, mem, sink, NullEventSource{})

	mem.Write(0x0000, 0x3C) // INC A, 1 machine cycle
	mem.Write(0x0001, 0x3C) // INC A

	cont, err := sched.tick()
	if err != nil || !cont {
		t.Fatalf("tick() = (%v, %v)", cont, err)
	}
	if cpu.A != 1 {
		t.Fatalf("expected first INC A to execute immediately, A=%d", cpu.A)
	}

	// machineCycleClocks*1 - 1 wait ticks must elapse before the next
	// instruction executes.
	for i := 0; i < machineCycleClocks-1; i++ {
		cont, err = sched.tick()
		if err != nil || !cont {
			t.Fatalf("tick() during wait = (%v, %v)", cont, err)
		}
		if cpu.A != 1 {
			t.Fatalf("A changed during wait-cycle billing at i=%d: A=%d", i, cpu.A)
		}
	}

	cont, err = sched.tick()
	if err != nil || !cont {
		t.Fatalf("tick() = (%v, %v)", cont, err)
	}
	if cpu.A != 2 {
		t.Fatalf("expected second INC A after billed wait cycles, A=%d", cpu.A)
	}
}

func TestSchedulerServicesInterruptWhenIMEEnabled(t *testing.T) {
	mem := NewMemory()
	cpu := NewCPU()
	cpu.IMEEnabled = true
	cpu.SP = 0xFFFE
	sink := NewHeadlessSink()
	sched := NewScheduler(cpu, mem, sink, NullEventSource{})

	mem.Write(0xFFFF, 0x01)
	mem.NotifyInterrupt(InterruptVBlank)

	cont, err := sched.tick()
	if err != nil || !cont {
		t.Fatalf("tick() = (%v, %v)", cont, err)
	}
	if cpu.PC != 0x0040 {
		t.Fatalf("expected interrupt dispatch to vector PC to 0x0040, got %#04x", cpu.PC)
	}
	if cpu.IMEEnabled {
		t.Fatal("IME should be disabled after servicing the interrupt")
	}
}

func TestSchedulerStopsOnQuitEvent(t *testing.T) {
	mem := NewMemory()
	cpu := NewCPU()
	sink := NewHeadlessSink()
	events := NewChannelEventSource(4)
	sched := NewScheduler(cpu, mem, sink, events)

	events.Push(Event{Quit: true})

	cont, err := sched.tick()
	if err != nil {
		t.Fatal(err)
	}
	if cont {
		t.Fatal("expected tick() to report stop on a quit event")
	}
}

func TestSchedulerRendersEveryOtherTick(t *testing.T) {
	mem := NewMemory()
	cpu := NewCPU()
	sink := NewHeadlessSink()
	sched := NewScheduler(cpu, mem, sink, NullEventSource{})

	for i := 0; i < 4; i++ {
		if _, err := sched.tick(); err != nil {
			t.Fatal(err)
		}
	}
	if sink.Frames != 2 {
		t.Fatalf("Frames = %d, want 2 after 4 ticks", sink.Frames)
	}
}

func TestSchedulerFreezesDisplayWhileStopped(t *testing.T) {
	mem := NewMemory()
	cpu := NewCPU()
	cpu.Stopped = true
	sink := NewHeadlessSink()
	sched := NewScheduler(cpu, mem, sink, NullEventSource{})

	for i := 0; i < 4; i++ {
		if _, err := sched.tick(); err != nil {
			t.Fatal(err)
		}
	}
	if sink.Frames != 0 {
		t.Fatalf("Frames = %d, want 0 while the CPU is stopped", sink.Frames)
	}
}
