package main

import "testing"

// runOpcode places opcode (plus any operand bytes) at PC=0 and steps once.
func runOpcode(t *testing.T, cpu *CPU, mem *Memory, opcode byte, operands ...byte) {
	t.Helper()
	mem.Write(0x0000, opcode)
	for i, b := range operands {
		mem.Write(uint16(1+i), b)
	}
	if err := cpu.Step(mem); err != nil {
		t.Fatalf("Step(%#02x): %v", opcode, err)
	}
}

func TestADCQuirks(t *testing.T) {
	mem := NewMemory()
	cpu := NewCPU()

	cpu.A, cpu.E = 0xE1, 0x0F
	cpu.SetFlag(FlagCY, true)
	runOpcode(t, cpu, mem, 0x8B)
	if cpu.A != 0xF1 || cpu.GetFlag(FlagZ) || !cpu.GetFlag(FlagH) || cpu.GetFlag(FlagCY) {
		t.Fatalf("case 1: A=%#02x Z=%v H=%v CY=%v", cpu.A, cpu.GetFlag(FlagZ), cpu.GetFlag(FlagH), cpu.GetFlag(FlagCY))
	}

	cpu.PC = 0
	cpu.A, cpu.E = 0xE1, 0x3B
	cpu.SetFlag(FlagCY, true)
	runOpcode(t, cpu, mem, 0x8B)
	if cpu.A != 0x1D || cpu.GetFlag(FlagZ) || cpu.GetFlag(FlagH) || !cpu.GetFlag(FlagCY) {
		t.Fatalf("case 2: A=%#02x Z=%v H=%v CY=%v", cpu.A, cpu.GetFlag(FlagZ), cpu.GetFlag(FlagH), cpu.GetFlag(FlagCY))
	}

	cpu.PC = 0
	cpu.A, cpu.E = 0xE1, 0x1E
	cpu.SetFlag(FlagCY, true)
	runOpcode(t, cpu, mem, 0x8B)
	if cpu.A != 0x00 || !cpu.GetFlag(FlagZ) || !cpu.GetFlag(FlagH) || !cpu.GetFlag(FlagCY) {
		t.Fatalf("case 3: A=%#02x Z=%v H=%v CY=%v", cpu.A, cpu.GetFlag(FlagZ), cpu.GetFlag(FlagH), cpu.GetFlag(FlagCY))
	}
}

func TestSUBFlags(t *testing.T) {
	mem := NewMemory()

	cases := []struct {
		a, e                 byte
		wantA                byte
		wantZ, wantH, wantCY bool
	}{
		{0x3E, 0x3E, 0x00, true, false, false},
		{0x3E, 0x0F, 0x2F, false, true, false},
		{0x3E, 0x40, 0xFE, false, false, true},
	}

	for _, c := range cases {
		cpu := NewCPU()
		cpu.A, cpu.E = c.a, c.e
		runOpcode(t, cpu, mem, 0x93)

		if cpu.A != c.wantA || !cpu.GetFlag(FlagN) ||
			cpu.GetFlag(FlagZ) != c.wantZ || cpu.GetFlag(FlagH) != c.wantH || cpu.GetFlag(FlagCY) != c.wantCY {
			t.Fatalf("SUB A=%#02x E=%#02x: got A=%#02x Z=%v N=%v H=%v CY=%v",
				c.a, c.e, cpu.A, cpu.GetFlag(FlagZ), cpu.GetFlag(FlagN), cpu.GetFlag(FlagH), cpu.GetFlag(FlagCY))
		}
	}
}

func TestADDHLss(t *testing.T) {
	mem := NewMemory()
	cpu := NewCPU()

	cpu.Write16(RegHL, 0x8A23)
	cpu.Write16(RegBC, 0x0605)
	runOpcode(t, cpu, mem, 0x09)
	if cpu.Read16(RegHL) != 0x9028 || !cpu.GetFlag(FlagH) || cpu.GetFlag(FlagCY) {
		t.Fatalf("ADD HL,BC: HL=%#04x H=%v CY=%v", cpu.Read16(RegHL), cpu.GetFlag(FlagH), cpu.GetFlag(FlagCY))
	}

	cpu.PC = 0
	cpu.Write16(RegHL, 0x8A23)
	runOpcode(t, cpu, mem, 0x29)
	if cpu.Read16(RegHL) != 0x1446 || !cpu.GetFlag(FlagH) || !cpu.GetFlag(FlagCY) {
		t.Fatalf("ADD HL,HL: HL=%#04x H=%v CY=%v", cpu.Read16(RegHL), cpu.GetFlag(FlagH), cpu.GetFlag(FlagCY))
	}
}

func TestRLCA(t *testing.T) {
	mem := NewMemory()
	cpu := NewCPU()

	cpu.A = 0x85
	runOpcode(t, cpu, mem, 0x07)
	if cpu.A != 0x0B || !cpu.GetFlag(FlagCY) || cpu.GetFlag(FlagZ) || cpu.GetFlag(FlagN) || cpu.GetFlag(FlagH) {
		t.Fatalf("RLCA: A=%#02x CY=%v Z=%v N=%v H=%v", cpu.A, cpu.GetFlag(FlagCY), cpu.GetFlag(FlagZ), cpu.GetFlag(FlagN), cpu.GetFlag(FlagH))
	}
}
