// opcodes_cb.go - CB-prefixed table, §4.3.2

package main

// initCBOps populates the full 256-entry CB table: 00 -> rotate/shift
// group, 01 -> BIT, 10 -> RES, 11 -> SET, each crossed with the 3-bit r8
// operand field. Every one of the 256 slots is defined (no undefined CB
// opcodes).
//
// Cycle budgets below are the op's own share only; opCBPrefix bills 1
// machine cycle for the 0xCB fetch itself, so register ops total 3
// machine cycles and (HL) ops total 4, per §4.3.2's timing note.
func (c *CPU) initCBOps() {
	for sub := byte(0); sub < 8; sub++ {
		for srcBits := byte(0); srcBits < 8; srcBits++ {
			reg := r8Table[srcBits]
			opcode := 0x00 | sub<<3 | srcBits
			c.cbOps[opcode] = makeShiftRotate(sub, reg)

			opcode = 0x40 | sub<<3 | srcBits
			c.cbOps[opcode] = makeBIT(sub, reg)

			opcode = 0x80 | sub<<3 | srcBits
			c.cbOps[opcode] = makeRES(sub, reg)

			opcode = 0xC0 | sub<<3 | srcBits
			c.cbOps[opcode] = makeSET(sub, reg)
		}
	}
}

// makeShiftRotate builds the handler for one of the eight CB rotate/shift
// variants {RLC,RRC,RL,RR,SLA,SRA,SWAP,SRL} against an r8 operand. Flag
// rule: Z from result, N=0, H=0, CY from the bit shifted/rotated out (0
// for SWAP).
func makeShiftRotate(sub byte, reg Reg8) opcodeFunc {
	return func(c *CPU, mem *Memory) (int, int) {
		v := c.readR8(mem, reg)
		var result byte
		var carry bool
		switch sub {
		case 0:
			result, carry = rlc8(v)
		case 1:
			result, carry = rrc8(v)
		case 2:
			result, carry = rl8(v, c.GetFlag(FlagCY))
		case 3:
			result, carry = rr8(v, c.GetFlag(FlagCY))
		case 4:
			result, carry = sla8(v)
		case 5:
			result, carry = sra8(v)
		case 6:
			result, carry = swap8(v), false
		case 7:
			result, carry = srl8(v)
		}
		c.writeR8(mem, reg, result)
		c.SetFlag(FlagZ, result == 0)
		c.SetFlag(FlagN, false)
		c.SetFlag(FlagH, false)
		c.SetFlag(FlagCY, carry)
		if reg == RegHLMem {
			return 1, 3
		}
		return 1, 2
	}
}

// makeBIT builds the handler for BIT n,r8: Z is the complement of bit n,
// N=0, H=1, CY preserved.
func makeBIT(n byte, reg Reg8) opcodeFunc {
	return func(c *CPU, mem *Memory) (int, int) {
		v := c.readR8(mem, reg)
		bitSet := v&(1<<n) != 0
		c.SetFlag(FlagZ, !bitSet)
		c.SetFlag(FlagN, false)
		c.SetFlag(FlagH, true)
		if reg == RegHLMem {
			return 1, 3
		}
		return 1, 2
	}
}

// makeRES builds the handler for RES n,r8: clear bit n, flags untouched.
func makeRES(n byte, reg Reg8) opcodeFunc {
	mask := ^(byte(1) << n)
	return func(c *CPU, mem *Memory) (int, int) {
		v := c.readR8(mem, reg)
		c.writeR8(mem, reg, v&mask)
		if reg == RegHLMem {
			return 1, 3
		}
		return 1, 2
	}
}

// makeSET builds the handler for SET n,r8: set bit n, flags untouched.
func makeSET(n byte, reg Reg8) opcodeFunc {
	mask := byte(1) << n
	return func(c *CPU, mem *Memory) (int, int) {
		v := c.readR8(mem, reg)
		c.writeR8(mem, reg, v|mask)
		if reg == RegHLMem {
			return 1, 3
		}
		return 1, 2
	}
}
