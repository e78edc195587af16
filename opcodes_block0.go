// opcodes_block0.go - primary table block 0 (00xxxxxx), §4.3.1

package main

// initBlock0Ops populates baseOps[0x00..0x3F], the eight z sub-groups of
// block 0 described in §4.3.1. Groups z=0..6 are populated by looping over
// the 3-bit y field (z=0 through an explicit switch on y); the irregular
// z=7 group is enumerated explicitly.
func (c *CPU) initBlock0Ops() {
	for y := byte(0); y < 8; y++ {
		y := y
		opcode := y<<3 | 0
		if y>>2 == 0 {
			switch y & 3 {
			case 0:
				c.baseOps[opcode] = opNOP
			case 1:
				c.baseOps[opcode] = opLDimm16SP
			case 2:
				c.baseOps[opcode] = opSTOP
			case 3:
				c.baseOps[opcode] = opJRUncond
			}
		} else {
			cond := y & 3
			c.baseOps[opcode] = makeJRCond(cond)
		}

		opcode = y<<3 | 1
		if y&1 == 0 {
			c.baseOps[opcode] = makeLDr16Imm16(r16Table[y>>1])
		} else {
			c.baseOps[opcode] = makeADDHLr16(r16Table[y>>1])
		}

		opcode = y<<3 | 2
		r16mem := r16memTable[y>>1]
		if y&1 == 0 {
			c.baseOps[opcode] = makeLDR16MemA(r16mem)
		} else {
			c.baseOps[opcode] = makeLDAR16Mem(r16mem)
		}

		opcode = y<<3 | 3
		if y&1 == 0 {
			c.baseOps[opcode] = makeINCr16(r16Table[y>>1])
		} else {
			c.baseOps[opcode] = makeDECr16(r16Table[y>>1])
		}

		opcode = y<<3 | 4
		c.baseOps[opcode] = makeINCr8(r8Table[y])

		opcode = y<<3 | 5
		c.baseOps[opcode] = makeDECr8(r8Table[y])

		opcode = y<<3 | 6
		c.baseOps[opcode] = makeLDr8Imm8(r8Table[y])
	}

	c.baseOps[0x07] = opRLCA
	c.baseOps[0x0F] = opRRCA
	c.baseOps[0x17] = opRLA
	c.baseOps[0x1F] = opRRA
	c.baseOps[0x27] = opDAA
	c.baseOps[0x2F] = opCPL
	c.baseOps[0x37] = opSCF
	c.baseOps[0x3F] = opCCF
}

// r16memIdx names the four r16mem encodings used by LD (r16mem),A / LD
// A,(r16mem): BC, DE, HL with post-increment, HL with post-decrement.
type r16memIdx int

const (
	r16memBC r16memIdx = iota
	r16memDE
	r16memHLInc
	r16memHLDec
)

var r16memTable = [4]r16memIdx{r16memBC, r16memDE, r16memHLInc, r16memHLDec}

func (c *CPU) r16memAddr(idx r16memIdx) uint16 {
	switch idx {
	case r16memBC:
		return c.Read16(RegBC)
	case r16memDE:
		return c.Read16(RegDE)
	default:
		return c.Read16(RegHL)
	}
}

func (c *CPU) r16memPostStep(idx r16memIdx) {
	switch idx {
	case r16memHLInc:
		c.Write16(RegHL, c.Read16(RegHL)+1)
	case r16memHLDec:
		c.Write16(RegHL, c.Read16(RegHL)-1)
	}
}

func opNOP(c *CPU, mem *Memory) (int, int) { return 1, 1 }

func opLDimm16SP(c *CPU, mem *Memory) (int, int) {
	addr := imm16(mem, c.PC)
	sp := c.SP
	mem.Write(addr, byte(sp))
	mem.Write(addr+1, byte(sp>>8))
	return 3, 5
}

// opSTOP halts the CPU and display until a joypad event arrives (§4.3.3);
// CPU.Step gates further execution on c.Stopped the same way it gates on
// c.Halted, and the Scheduler freezes the display sink while stopped.
func opSTOP(c *CPU, mem *Memory) (int, int) {
	c.Stopped = true
	return 2, 1
}

func opJRUncond(c *CPU, mem *Memory) (int, int) {
	pc0 := c.PC
	offset := signed8(imm8(mem, pc0))
	c.PC = uint16(int32(pc0+2) + int32(offset))
	return 0, 3
}

func makeJRCond(cond byte) opcodeFunc {
	return func(c *CPU, mem *Memory) (int, int) {
		pc0 := c.PC
		offset := signed8(imm8(mem, pc0))
		target := pc0 + 2
		if c.checkCond(cond) {
			c.PC = uint16(int32(target) + int32(offset))
			return 0, 3
		}
		c.PC = target
		return 0, 2
	}
}

func makeLDr16Imm16(pair Reg16) opcodeFunc {
	return func(c *CPU, mem *Memory) (int, int) {
		c.Write16(pair, imm16(mem, c.PC))
		return 3, 3
	}
}

func makeADDHLr16(pair Reg16) opcodeFunc {
	return func(c *CPU, mem *Memory) (int, int) {
		c.addHL16(c.Read16(pair))
		return 1, 2
	}
}

func makeLDR16MemA(idx r16memIdx) opcodeFunc {
	return func(c *CPU, mem *Memory) (int, int) {
		mem.Write(c.r16memAddr(idx), c.A)
		c.r16memPostStep(idx)
		return 1, 2
	}
}

func makeLDAR16Mem(idx r16memIdx) opcodeFunc {
	return func(c *CPU, mem *Memory) (int, int) {
		c.A = mem.Read(c.r16memAddr(idx))
		c.r16memPostStep(idx)
		return 1, 2
	}
}

func makeINCr16(pair Reg16) opcodeFunc {
	return func(c *CPU, mem *Memory) (int, int) {
		c.Write16(pair, c.Read16(pair)+1)
		return 1, 2
	}
}

func makeDECr16(pair Reg16) opcodeFunc {
	return func(c *CPU, mem *Memory) (int, int) {
		c.Write16(pair, c.Read16(pair)-1)
		return 1, 2
	}
}

func makeINCr8(reg Reg8) opcodeFunc {
	return func(c *CPU, mem *Memory) (int, int) {
		v := c.readR8(mem, reg)
		c.writeR8(mem, reg, c.inc8(v))
		if reg == RegHLMem {
			return 1, 3
		}
		return 1, 1
	}
}

func makeDECr8(reg Reg8) opcodeFunc {
	return func(c *CPU, mem *Memory) (int, int) {
		v := c.readR8(mem, reg)
		c.writeR8(mem, reg, c.dec8(v))
		if reg == RegHLMem {
			return 1, 3
		}
		return 1, 1
	}
}

func makeLDr8Imm8(reg Reg8) opcodeFunc {
	return func(c *CPU, mem *Memory) (int, int) {
		v := imm8(mem, c.PC)
		c.writeR8(mem, reg, v)
		if reg == RegHLMem {
			return 2, 3
		}
		return 2, 2
	}
}

func opRLCA(c *CPU, mem *Memory) (int, int) {
	result, carry := rlc8(c.A)
	c.A = result
	c.SetFlag(FlagZ, false)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagCY, carry)
	return 1, 1
}

func opRRCA(c *CPU, mem *Memory) (int, int) {
	result, carry := rrc8(c.A)
	c.A = result
	c.SetFlag(FlagZ, false)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagCY, carry)
	return 1, 1
}

func opRLA(c *CPU, mem *Memory) (int, int) {
	result, carry := rl8(c.A, c.GetFlag(FlagCY))
	c.A = result
	c.SetFlag(FlagZ, false)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagCY, carry)
	return 1, 1
}

func opRRA(c *CPU, mem *Memory) (int, int) {
	result, carry := rr8(c.A, c.GetFlag(FlagCY))
	c.A = result
	c.SetFlag(FlagZ, false)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagCY, carry)
	return 1, 1
}

func opDAA(c *CPU, mem *Memory) (int, int) {
	c.daa()
	return 1, 1
}

func opCPL(c *CPU, mem *Memory) (int, int) {
	c.A = ^c.A
	c.SetFlag(FlagN, true)
	c.SetFlag(FlagH, true)
	return 1, 1
}

func opSCF(c *CPU, mem *Memory) (int, int) {
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagCY, true)
	return 1, 1
}

func opCCF(c *CPU, mem *Memory) (int, int) {
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagCY, !c.GetFlag(FlagCY))
	return 1, 1
}
