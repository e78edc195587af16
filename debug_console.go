// debug_console.go - interactive trace console, grounded on debug_monitor.go /
// debug_cpu_z80.go / debug_conditions.go

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RegisterInfo describes one CPU register for console display, mirroring
// the teacher's debug_interface.go shape.
type RegisterInfo struct {
	Name  string
	Value uint16
}

// GetRegisters returns the register file as a flat, display-ready slice.
func (c *CPU) GetRegisters() []RegisterInfo {
	return []RegisterInfo{
		{"A", uint16(c.Read8(RegA))},
		{"F", uint16(c.F)},
		{"B", uint16(c.Read8(RegB))},
		{"C", uint16(c.Read8(RegC))},
		{"D", uint16(c.Read8(RegD))},
		{"E", uint16(c.Read8(RegE))},
		{"H", uint16(c.Read8(RegH))},
		{"L", uint16(c.Read8(RegL))},
		{"SP", c.SP},
		{"PC", c.PC},
	}
}

// ConditionOp is a breakpoint comparison operator.
type ConditionOp int

const (
	CondOpEqual ConditionOp = iota
	CondOpNotEqual
	CondOpLess
	CondOpGreater
	CondOpLessEqual
	CondOpGreaterEqual
)

// BreakpointCondition is either a bare PC breakpoint (HasPC set) or a
// register/memory expression such as "A==$FF" or "[$FF40]==$91".
type BreakpointCondition struct {
	PC       uint16
	HasPC    bool
	IsMemory bool
	RegName  string
	MemAddr  uint16
	Op       ConditionOp
	Value    uint16
}

// ParseCondition parses a console breakpoint expression. Formats:
//
//	$150          - break when PC == 0x150
//	A==$FF        - break when register A equals 0xFF
//	[$FF40]==$91  - break when the byte at 0xFF40 equals 0x91
func ParseCondition(text string) (*BreakpointCondition, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty condition")
	}

	if strings.HasPrefix(text, "$") {
		pc, ok := parseHex(text[1:])
		if !ok {
			return nil, fmt.Errorf("invalid address: %s", text)
		}
		return &BreakpointCondition{PC: pc, HasPC: true}, nil
	}

	var opStr string
	var opIdx int
	for _, candidate := range []string{"==", "!=", "<=", ">=", "<", ">"} {
		if idx := strings.Index(text, candidate); idx >= 0 {
			opStr, opIdx = candidate, idx
			break
		}
	}
	if opStr == "" {
		return nil, fmt.Errorf("no operator found (use ==, !=, <, >, <=, >=)")
	}

	lhs := strings.TrimSpace(text[:opIdx])
	rhs := strings.TrimSpace(text[opIdx+len(opStr):])
	value, ok := parseHex(strings.TrimPrefix(rhs, "$"))
	if !ok {
		return nil, fmt.Errorf("invalid value: %s", rhs)
	}

	op := map[string]ConditionOp{
		"==": CondOpEqual, "!=": CondOpNotEqual,
		"<": CondOpLess, ">": CondOpGreater,
		"<=": CondOpLessEqual, ">=": CondOpGreaterEqual,
	}[opStr]

	if strings.HasPrefix(lhs, "[") && strings.HasSuffix(lhs, "]") {
		addr, ok := parseHex(strings.TrimPrefix(lhs[1:len(lhs)-1], "$"))
		if !ok {
			return nil, fmt.Errorf("invalid memory address: %s", lhs)
		}
		return &BreakpointCondition{IsMemory: true, MemAddr: addr, Op: op, Value: value}, nil
	}

	return &BreakpointCondition{RegName: strings.ToUpper(lhs), Op: op, Value: value}, nil
}

func parseHex(s string) (uint16, bool) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// Evaluate reports whether cond currently holds against cpu/mem.
func (cond *BreakpointCondition) Evaluate(cpu *CPU, mem *Memory) bool {
	if cond.HasPC {
		return cpu.PC == cond.PC
	}

	var actual uint16
	if cond.IsMemory {
		actual = uint16(mem.Read(cond.MemAddr))
	} else {
		found := false
		for _, r := range cpu.GetRegisters() {
			if r.Name == cond.RegName {
				actual, found = r.Value, true
				break
			}
		}
		if !found {
			return false
		}
	}

	switch cond.Op {
	case CondOpEqual:
		return actual == cond.Value
	case CondOpNotEqual:
		return actual != cond.Value
	case CondOpLess:
		return actual < cond.Value
	case CondOpGreater:
		return actual > cond.Value
	case CondOpLessEqual:
		return actual <= cond.Value
	case CondOpGreaterEqual:
		return actual >= cond.Value
	}
	return false
}

// DebugConsole is an optional interactive console attached by --trace. It is
// polled once per Scheduler tick from outside the hot instruction path, per
// §5's "no locking inside instruction execution" rule - the console only
// reads CPU/Memory state between ticks, never during Step.
type DebugConsole struct {
	CPU    *CPU
	Memory *Memory

	in  *bufio.Scanner
	out io.Writer

	breakpoints []*BreakpointCondition
	script      *ScriptEngine
}

// NewDebugConsole builds a console reading commands from in and writing
// output to out.
func NewDebugConsole(cpu *CPU, mem *Memory, in io.Reader, out io.Writer) *DebugConsole {
	return &DebugConsole{
		CPU:    cpu,
		Memory: mem,
		in:     bufio.NewScanner(in),
		out:    out,
		script: NewScriptEngine(cpu, mem),
	}
}

// ShouldBreak reports whether any registered breakpoint currently holds.
// Called once per Scheduler tick by the owning loop.
func (d *DebugConsole) ShouldBreak() bool {
	for _, bp := range d.breakpoints {
		if bp.Evaluate(d.CPU, d.Memory) {
			return true
		}
	}
	return false
}

// RunREPL reads and executes one command per line until the input is
// exhausted or a "continue" command is entered.
func (d *DebugConsole) RunREPL() {
	fmt.Fprint(d.out, "(debug) ")
	for d.in.Scan() {
		line := strings.TrimSpace(d.in.Text())
		if line == "" {
			fmt.Fprint(d.out, "(debug) ")
			continue
		}
		if d.execute(line) {
			return
		}
		fmt.Fprint(d.out, "(debug) ")
	}
}

// execute runs one console command. It returns true when the REPL should
// stop reading (the "continue" / "c" command).
func (d *DebugConsole) execute(line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "continue", "c":
		return true

	case "regs", "r":
		for _, reg := range d.CPU.GetRegisters() {
			fmt.Fprintf(d.out, "%-3s %04X\n", reg.Name, reg.Value)
		}

	case "mem", "m":
		if len(args) < 1 {
			fmt.Fprintln(d.out, "usage: mem <addr> [count]")
			break
		}
		addr, ok := parseHex(strings.TrimPrefix(args[0], "$"))
		if !ok {
			fmt.Fprintln(d.out, "bad address")
			break
		}
		count := 16
		if len(args) > 1 {
			if n, err := strconv.Atoi(args[1]); err == nil {
				count = n
			}
		}
		for i := 0; i < count; i++ {
			fmt.Fprintf(d.out, "%04X: %02X\n", addr+uint16(i), d.Memory.Read(addr+uint16(i)))
		}

	case "break", "b":
		if len(args) < 1 {
			fmt.Fprintln(d.out, "usage: break <condition>")
			break
		}
		cond, err := ParseCondition(strings.Join(args, ""))
		if err != nil {
			fmt.Fprintf(d.out, "error: %v\n", err)
			break
		}
		d.breakpoints = append(d.breakpoints, cond)

	case "disasm", "d":
		fmt.Fprintln(d.out, Disassemble(d.Memory, d.CPU.PC))

	case "script":
		if len(args) < 1 {
			fmt.Fprintln(d.out, "usage: script <lua snippet>")
			break
		}
		if err := d.script.Run(strings.Join(args, " ")); err != nil {
			fmt.Fprintf(d.out, "script error: %v\n", err)
		}

	case "paste":
		text, err := readClipboardText()
		if err != nil {
			fmt.Fprintf(d.out, "clipboard error: %v\n", err)
			break
		}
		for _, subline := range strings.Split(text, "\n") {
			if subline = strings.TrimSpace(subline); subline != "" {
				d.execute(subline)
			}
		}

	default:
		fmt.Fprintf(d.out, "unknown command: %s\n", cmd)
	}

	return false
}
