package cpu

// internalDelay accounts for an M-cycle the SM83 spends doing internal
// register-file or ALU work with no bus transaction — a 16-bit add, a
// stack-pointer adjustment, a taken branch's PC reload. It is the only
// micro-op that advances the cycle counter without a READ or WRITE.
func (c *CPU) internalDelay() {
	c.tick()
}

// getR8 reads an 8-bit operand by hardware r-index, routing index 6
// through memory at (HL) instead of the register file.
func (c *CPU) getR8(mem Memory, idx uint8) uint8 {
	if idx == RegIndirectHL {
		return c.read(mem, c.Reg.HL())
	}
	return c.Reg.Get8(idx)
}

// setR8 writes an 8-bit operand by hardware r-index, routing index 6
// through memory at (HL).
func (c *CPU) setR8(mem Memory, idx uint8, v uint8) {
	if idx == RegIndirectHL {
		c.write(mem, c.Reg.HL(), v)
		return
	}
	c.Reg.Set8(idx, v)
}

// applyFlags copies the bits of flags selected by mask into F, replacing
// those bits of F and leaving any bits not set in mask untouched. Most ALU helpers pass FlagZ|FlagN|FlagH|FlagC to
// fully overwrite; INC/DEC pass a mask that excludes FlagC, since they
// must preserve the caller's existing carry flag.
func (c *CPU) applyFlags(flags, mask uint8) {
	c.Reg.F = c.Reg.F&^mask | flags&mask
}

const allFlags = FlagZ | FlagN | FlagH | FlagC

// executeBase runs the instruction decoded from a non-CB opcode. err is
// non-nil only for OpUnknown, the eleven opcode bytes Sharp never assigned
// a meaning to plus anything DecodeBase fails to classify.
func (c *CPU) executeBase(mem Memory, ir uint8, instr Instruction) error {
	switch instr.Mnemonic {
	case OpNOP:
		return nil

	case OpLDrr:
		c.setR8(mem, instr.Dst, c.getR8(mem, instr.Src))
		return nil

	case OpLDrn:
		n := c.fetchImm8(mem)
		c.setR8(mem, instr.Dst, n)
		return nil

	case OpLDAaBC:
		c.Reg.A = c.read(mem, c.Reg.BC())
		return nil
	case OpLDAaDE:
		c.Reg.A = c.read(mem, c.Reg.DE())
		return nil
	case OpLDaBCA:
		c.write(mem, c.Reg.BC(), c.Reg.A)
		return nil
	case OpLDaDEA:
		c.write(mem, c.Reg.DE(), c.Reg.A)
		return nil

	case OpLDAann:
		addr := c.fetchImm16(mem)
		c.Reg.A = c.read(mem, addr)
		return nil
	case OpLDannA:
		addr := c.fetchImm16(mem)
		c.write(mem, addr, c.Reg.A)
		return nil

	case OpLDHAaC:
		c.Reg.A = c.read(mem, 0xFF00+uint16(c.Reg.C))
		return nil
	case OpLDHaCA:
		c.write(mem, 0xFF00+uint16(c.Reg.C), c.Reg.A)
		return nil
	case OpLDHAan:
		off := c.fetchImm8(mem)
		c.Reg.A = c.read(mem, 0xFF00+uint16(off))
		return nil
	case OpLDHanA:
		off := c.fetchImm8(mem)
		c.write(mem, 0xFF00+uint16(off), c.Reg.A)
		return nil

	case OpLDAaHLI:
		hl := c.Reg.HL()
		c.Reg.A = c.read(mem, hl)
		c.Reg.SetHL(IDUIncrement(hl))
		return nil
	case OpLDAaHLD:
		hl := c.Reg.HL()
		c.Reg.A = c.read(mem, hl)
		c.Reg.SetHL(IDUDecrement(hl))
		return nil
	case OpLDaHLIA:
		hl := c.Reg.HL()
		c.write(mem, hl, c.Reg.A)
		c.Reg.SetHL(IDUIncrement(hl))
		return nil
	case OpLDaHLDA:
		hl := c.Reg.HL()
		c.write(mem, hl, c.Reg.A)
		c.Reg.SetHL(IDUDecrement(hl))
		return nil

	case OpLDddnn:
		nn := c.fetchImm16(mem)
		c.Reg.Set16DD(instr.Dst, nn)
		return nil

	case OpLDannSP:
		addr := c.fetchImm16(mem)
		c.write(mem, addr, uint8(c.Reg.SP))
		c.write(mem, addr+1, uint8(c.Reg.SP>>8))
		return nil

	case OpLDSPHL:
		c.Reg.SP = c.Reg.HL()
		c.internalDelay()
		return nil

	case OpPUSHqq:
		c.internalDelay()
		c.push16(mem, c.Reg.Get16QQ(instr.Dst))
		return nil

	case OpPOPqq:
		v := c.pop16(mem)
		c.Reg.Set16QQ(instr.Dst, v)
		return nil

	case OpLDHLSPe:
		e := int8(c.fetchImm8(mem))
		result, flags := Add16Signed(c.Reg.SP, e)
		c.Reg.SetHL(result)
		c.applyFlags(flags, allFlags)
		c.internalDelay()
		return nil

	case OpADDSPe:
		e := int8(c.fetchImm8(mem))
		result, flags := Add16Signed(c.Reg.SP, e)
		c.Reg.SP = result
		c.applyFlags(flags, allFlags)
		c.internalDelay()
		c.internalDelay()
		return nil

	case OpADDAr:
		result, flags := Add(c.Reg.A, c.getR8(mem, instr.Src))
		c.Reg.A = result
		c.applyFlags(flags, allFlags)
		return nil
	case OpADDAn:
		result, flags := Add(c.Reg.A, c.fetchImm8(mem))
		c.Reg.A = result
		c.applyFlags(flags, allFlags)
		return nil
	case OpADCAr:
		result, flags := Add3(c.Reg.A, c.getR8(mem, instr.Src), c.Reg.Flag(FlagC))
		c.Reg.A = result
		c.applyFlags(flags, allFlags)
		return nil
	case OpADCAn:
		result, flags := Add3(c.Reg.A, c.fetchImm8(mem), c.Reg.Flag(FlagC))
		c.Reg.A = result
		c.applyFlags(flags, allFlags)
		return nil

	case OpSUBr:
		result, flags := Sub(c.Reg.A, c.getR8(mem, instr.Src))
		c.Reg.A = result
		c.applyFlags(flags, allFlags)
		return nil
	case OpSUBn:
		result, flags := Sub(c.Reg.A, c.fetchImm8(mem))
		c.Reg.A = result
		c.applyFlags(flags, allFlags)
		return nil
	case OpSBCAr:
		result, flags := Sub3(c.Reg.A, c.getR8(mem, instr.Src), c.Reg.Flag(FlagC))
		c.Reg.A = result
		c.applyFlags(flags, allFlags)
		return nil
	case OpSBCAn:
		result, flags := Sub3(c.Reg.A, c.fetchImm8(mem), c.Reg.Flag(FlagC))
		c.Reg.A = result
		c.applyFlags(flags, allFlags)
		return nil

	case OpANDr:
		result, flags := And(c.Reg.A, c.getR8(mem, instr.Src))
		c.Reg.A = result
		c.applyFlags(flags, allFlags)
		return nil
	case OpANDn:
		result, flags := And(c.Reg.A, c.fetchImm8(mem))
		c.Reg.A = result
		c.applyFlags(flags, allFlags)
		return nil
	case OpORr:
		result, flags := Or(c.Reg.A, c.getR8(mem, instr.Src))
		c.Reg.A = result
		c.applyFlags(flags, allFlags)
		return nil
	case OpORn:
		result, flags := Or(c.Reg.A, c.fetchImm8(mem))
		c.Reg.A = result
		c.applyFlags(flags, allFlags)
		return nil
	case OpXORr:
		result, flags := Xor(c.Reg.A, c.getR8(mem, instr.Src))
		c.Reg.A = result
		c.applyFlags(flags, allFlags)
		return nil
	case OpXORn:
		result, flags := Xor(c.Reg.A, c.fetchImm8(mem))
		c.Reg.A = result
		c.applyFlags(flags, allFlags)
		return nil
	case OpCPr:
		_, flags := Sub(c.Reg.A, c.getR8(mem, instr.Src))
		c.applyFlags(flags, allFlags)
		return nil
	case OpCPn:
		_, flags := Sub(c.Reg.A, c.fetchImm8(mem))
		c.applyFlags(flags, allFlags)
		return nil

	case OpINCr:
		result, flags := Increment(c.getR8(mem, instr.Dst))
		c.setR8(mem, instr.Dst, result)
		c.applyFlags(flags, FlagZ|FlagN|FlagH)
		return nil
	case OpDECr:
		result, flags := Decrement(c.getR8(mem, instr.Dst))
		c.setR8(mem, instr.Dst, result)
		c.applyFlags(flags, FlagZ|FlagN|FlagH)
		return nil

	case OpCCF:
		c.Reg.SetFlag(FlagN, false)
		c.Reg.SetFlag(FlagH, false)
		c.Reg.SetFlag(FlagC, !c.Reg.Flag(FlagC))
		return nil
	case OpSCF:
		c.Reg.SetFlag(FlagN, false)
		c.Reg.SetFlag(FlagH, false)
		c.Reg.SetFlag(FlagC, true)
		return nil
	case OpDAA:
		result, flags := DAA(c.Reg.A, c.Reg.F)
		c.Reg.A = result
		c.Reg.F = flags
		return nil
	case OpCPL:
		c.Reg.A = ^c.Reg.A
		c.Reg.SetFlag(FlagN, true)
		c.Reg.SetFlag(FlagH, true)
		return nil

	case OpINCrr:
		c.Reg.Set16DD(instr.Dst, IDUIncrement(c.Reg.Get16DD(instr.Dst)))
		c.internalDelay()
		return nil
	case OpDECrr:
		c.Reg.Set16DD(instr.Dst, IDUDecrement(c.Reg.Get16DD(instr.Dst)))
		c.internalDelay()
		return nil

	case OpADDHLrr:
		hl := c.Reg.HL()
		rr := c.Reg.Get16DD(instr.Dst)
		loResult, loFlags := Add(uint8(hl), uint8(rr))
		hiResult, hiFlags := Add3(uint8(hl>>8), uint8(rr>>8), loFlags&FlagC != 0)
		c.Reg.SetHL(uint16(hiResult)<<8 | uint16(loResult))
		c.Reg.SetFlag(FlagN, false)
		c.Reg.SetFlag(FlagH, hiFlags&FlagH != 0)
		c.Reg.SetFlag(FlagC, hiFlags&FlagC != 0)
		c.internalDelay()
		return nil

	case OpRLCA:
		result, flags := RotateLeftCircular(c.Reg.A)
		c.Reg.A = result
		c.applyFlags(flags, FlagC)
		c.Reg.SetFlag(FlagZ, false)
		c.Reg.SetFlag(FlagN, false)
		c.Reg.SetFlag(FlagH, false)
		return nil
	case OpRLA:
		result, flags := RotateLeft(c.Reg.A, c.Reg.Flag(FlagC))
		c.Reg.A = result
		c.applyFlags(flags, FlagC)
		c.Reg.SetFlag(FlagZ, false)
		c.Reg.SetFlag(FlagN, false)
		c.Reg.SetFlag(FlagH, false)
		return nil
	case OpRRCA:
		result, flags := RotateRightCircular(c.Reg.A)
		c.Reg.A = result
		c.applyFlags(flags, FlagC)
		c.Reg.SetFlag(FlagZ, false)
		c.Reg.SetFlag(FlagN, false)
		c.Reg.SetFlag(FlagH, false)
		return nil
	case OpRRA:
		result, flags := RotateRight(c.Reg.A, c.Reg.Flag(FlagC))
		c.Reg.A = result
		c.applyFlags(flags, FlagC)
		c.Reg.SetFlag(FlagZ, false)
		c.Reg.SetFlag(FlagN, false)
		c.Reg.SetFlag(FlagH, false)
		return nil

	case OpJPnn:
		addr := c.fetchImm16(mem)
		c.Reg.PC = addr
		c.internalDelay()
		return nil
	case OpJPHL:
		c.Reg.PC = c.Reg.HL()
		return nil
	case OpJPccnn:
		addr := c.fetchImm16(mem)
		if c.checkCondition(instr.Cond) {
			c.Reg.PC = addr
			c.internalDelay()
		}
		return nil

	case OpJRe:
		e := int8(c.fetchImm8(mem))
		c.Reg.PC = uint16(int32(c.Reg.PC) + int32(e))
		c.internalDelay()
		return nil
	case OpJRcce:
		e := int8(c.fetchImm8(mem))
		if c.checkCondition(instr.Cond) {
			c.Reg.PC = uint16(int32(c.Reg.PC) + int32(e))
			c.internalDelay()
		}
		return nil

	case OpCALLnn:
		addr := c.fetchImm16(mem)
		c.internalDelay()
		c.push16(mem, c.Reg.PC)
		c.Reg.PC = addr
		return nil
	case OpCALLccnn:
		addr := c.fetchImm16(mem)
		if c.checkCondition(instr.Cond) {
			c.internalDelay()
			c.push16(mem, c.Reg.PC)
			c.Reg.PC = addr
		}
		return nil

	case OpRET:
		pc := c.pop16(mem)
		c.Reg.PC = pc
		c.internalDelay()
		return nil
	case OpRETcc:
		c.internalDelay()
		if c.checkCondition(instr.Cond) {
			pc := c.pop16(mem)
			c.Reg.PC = pc
			c.internalDelay()
		}
		return nil
	case OpRETI:
		pc := c.pop16(mem)
		c.Reg.PC = pc
		c.internalDelay()
		c.IME = true
		c.pendingIME = false
		return nil

	case OpRSTn:
		c.internalDelay()
		c.push16(mem, c.Reg.PC)
		c.Reg.PC = uint16(instr.Vector)
		return nil

	case OpDI:
		c.IME = false
		c.pendingIME = false
		return nil
	case OpEI:
		c.pendingIME = true
		return nil

	case OpHALT:
		c.Reg.PC = IDUDecrement(c.Reg.PC)
		c.Halted = true
		return nil
	case OpSTOP:
		c.Stopped = true
		return nil

	default:
		return &UnknownOpcodeError{Opcode: ir, PC: c.Reg.PC, State: c.ToSnapshot()}
	}
}
