// main.go - command-line entry point

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var headless bool
	var trace bool
	var windowed bool

	rootCmd := &cobra.Command{
		Use:   "gbc-emulator [rom]",
		Short: "A Game Boy Color core and memory subsystem emulator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], headless, windowed, trace)
		},
	}
	rootCmd.Flags().BoolVar(&headless, "headless", false, "run without any display window")
	rootCmd.Flags().BoolVar(&windowed, "window", false, "open a real ebiten window instead of reading terminal keys")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "attach the interactive debug console")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the core (CPU/Memory), a display Sink, an input EventSource and
// the Scheduler together, then drives them until the ROM halts the machine
// or the user quits.
func run(romPath string, headless, windowed, trace bool) error {
	mem := NewMemory()
	cpu := NewCPU()

	if err := LoadROM(mem, romPath); err != nil {
		return err
	}

	var sink Sink
	var ebitenSink *EbitenSink
	if headless || !windowed {
		sink = NewHeadlessSink()
	} else {
		ebitenSink = NewEbitenSink()
		sink = ebitenSink
	}

	var events EventSource
	var terminal *TerminalInput
	if headless {
		events = NullEventSource{}
	} else {
		channel := NewChannelEventSource(64)
		events = channel
		if !windowed {
			terminal = NewTerminalInput(channel)
			terminal.Start()
			defer terminal.Stop()
		}
	}

	sched := NewScheduler(cpu, mem, sink, events)

	if trace {
		console := NewDebugConsole(cpu, mem, os.Stdin, os.Stdout)
		return runTraced(sched, console)
	}

	if ebitenSink != nil {
		sched.StartAsync()
		defer sched.Stop()
		return ebitenSink.Run("gbc-emulator")
	}

	return sched.Run()
}

// runTraced drives the Scheduler one tick at a time, dropping into the
// debug console's RunREPL whenever a registered breakpoint fires.
func runTraced(sched *Scheduler, console *DebugConsole) error {
	for {
		if console.ShouldBreak() {
			console.RunREPL()
		}

		cont, err := sched.tick()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
