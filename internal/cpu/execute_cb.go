package cpu

// executeCB runs the instruction decoded from a CB-prefixed opcode. The CB
// byte itself has already been fetched (and ticked) by Step before this is
// called. Register-operand forms take no further bus cycles; (HL) forms
// cost one additional READ, and every family but BIT also costs a
// following WRITE to store the result back.
func (c *CPU) executeCB(mem Memory, instr Instruction) error {
	switch instr.Mnemonic {
	case OpCBROT:
		v := c.getR8(mem, instr.CBReg)
		var result, flags uint8
		switch instr.CBOp {
		case CBRLC:
			result, flags = RotateLeftCircular(v)
		case CBRRC:
			result, flags = RotateRightCircular(v)
		case CBRL:
			result, flags = RotateLeft(v, c.Reg.Flag(FlagC))
		case CBRR:
			result, flags = RotateRight(v, c.Reg.Flag(FlagC))
		case CBSLA:
			result, flags = ShiftLeftArithmetic(v)
		case CBSRA:
			result, flags = ShiftRightArithmetic(v)
		case CBSWAP:
			result, flags = SwapNibbles(v)
		default: // CBSRL
			result, flags = ShiftRightLogical(v)
		}
		c.setR8(mem, instr.CBReg, result)
		c.applyFlags(flags, allFlags)
		return nil

	case OpCBBIT:
		v := c.getR8(mem, instr.CBReg)
		flags := TestBit(v, instr.Bit)
		c.applyFlags(flags, FlagZ|FlagH)
		c.Reg.SetFlag(FlagN, false)
		return nil

	case OpCBRES:
		v := c.getR8(mem, instr.CBReg)
		c.setR8(mem, instr.CBReg, ResetBit(v, instr.Bit))
		return nil

	case OpCBSET:
		v := c.getR8(mem, instr.CBReg)
		c.setR8(mem, instr.CBReg, SetBit(v, instr.Bit))
		return nil

	default:
		return &UnknownOpcodeError{Opcode: 0xCB, PC: c.Reg.PC, State: c.ToSnapshot()}
	}
}
