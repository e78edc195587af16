// disasm.go - minimal diagnostic disassembler for decode-fault reporting

package main

import (
	"fmt"
	"strings"
)

// Disassemble renders the four bytes preceding pc and the opcode at pc as
// a hex byte string, for the DecodeFault diagnostic required by §7
// ({PC, opcode, disassembly of prior 4 bytes}). This is not a full
// instruction-level disassembler; it gives an operator enough context to
// locate the fault in a hex dump of the ROM.
func Disassemble(mem *Memory, pc uint16) string {
	const lookback = 4
	start := pc
	for i := 0; i < lookback && start > 0; i++ {
		start--
	}

	var b strings.Builder
	for addr := start; addr < pc; addr++ {
		fmt.Fprintf(&b, "%02X ", mem.Read(addr))
	}
	fmt.Fprintf(&b, "[%02X]", mem.Read(pc))
	return b.String()
}
