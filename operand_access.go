// operand_access.go - r8 operand-field access, including the (HL) slot

package main

// readR8 returns the value named by an r8 field, reading the memory byte
// at HL when reg is RegHLMem (§4.1).
func (c *CPU) readR8(mem *Memory, reg Reg8) byte {
	if reg == RegHLMem {
		return mem.Read(c.Read16(RegHL))
	}
	return c.Read8(reg)
}

// writeR8 stores v into the register (or (HL) memory byte) named by an r8
// field.
func (c *CPU) writeR8(mem *Memory, reg Reg8, v byte) {
	if reg == RegHLMem {
		mem.Write(c.Read16(RegHL), v)
		return
	}
	c.Write8(reg, v)
}

// imm8 reads the byte immediately following the opcode at pc0.
func imm8(mem *Memory, pc0 uint16) byte {
	return mem.Read(pc0 + 1)
}

// imm16 reads the little-endian word immediately following the opcode at pc0.
func imm16(mem *Memory, pc0 uint16) uint16 {
	lo := mem.Read(pc0 + 1)
	hi := mem.Read(pc0 + 2)
	return uint16(hi)<<8 | uint16(lo)
}

// signed8 reinterprets a byte as its signed value, used for JR operands.
func signed8(v byte) int8 {
	return int8(v)
}

// checkCond evaluates one of the four branch conditions against current
// flags: 00->NZ, 01->Z, 10->NC, 11->C.
func (c *CPU) checkCond(cc byte) bool {
	switch cc & 0x03 {
	case 0:
		return !c.GetFlag(FlagZ)
	case 1:
		return c.GetFlag(FlagZ)
	case 2:
		return !c.GetFlag(FlagCY)
	default:
		return c.GetFlag(FlagCY)
	}
}
