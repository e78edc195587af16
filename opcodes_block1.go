// opcodes_block1.go - primary table block 1 (01xxxxxx): LD r8,r8 and HALT

package main

// initBlock1Ops populates baseOps[0x40..0x7F]: destination from bits
// [5:3], source from bits [2:0], except 0x76 (both fields 6) which is
// HALT rather than LD (HL),(HL).
func (c *CPU) initBlock1Ops() {
	for dstBits := byte(0); dstBits < 8; dstBits++ {
		for srcBits := byte(0); srcBits < 8; srcBits++ {
			opcode := 0x40 | dstBits<<3 | srcBits
			if dstBits == 6 && srcBits == 6 {
				c.baseOps[opcode] = opHALT
				continue
			}
			c.baseOps[opcode] = makeLDr8r8(r8Table[dstBits], r8Table[srcBits])
		}
	}
}

func makeLDr8r8(dst, src Reg8) opcodeFunc {
	return func(c *CPU, mem *Memory) (int, int) {
		v := c.readR8(mem, src)
		c.writeR8(mem, dst, v)
		if dst == RegHLMem || src == RegHLMem {
			return 1, 2
		}
		return 1, 1
	}
}

// opHALT implements opcode 0x76 and the HALT-bug edge case of §4.3.3/§9:
// when IME is off with an interrupt already pending, the CPU does not
// actually suspend and the instruction following HALT loses one PC
// advance, causing it to be re-executed.
func opHALT(c *CPU, mem *Memory) (int, int) {
	if !c.IMEEnabled && mem.AnyPendingInterrupt() {
		c.haltBugSuppressNext = true
	} else {
		c.Halted = true
	}
	return 1, 1
}
