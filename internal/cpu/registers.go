package cpu

// Flag bit positions within F, the low byte of AF.
const (
	FlagZ uint8 = 0x80 // Zero
	FlagN uint8 = 0x40 // Subtract
	FlagH uint8 = 0x20 // Half carry
	FlagC uint8 = 0x10 // Carry
)

// 8-bit register indices as encoded in the "r" field of an opcode byte
// (bits 0-2 for the source operand, bits 3-5 for the destination operand).
// Index 6 addresses (HL) and is handled by the CPU core, not the register
// file, since it requires a memory access rather than a register read.
const (
	RegB uint8 = 0
	RegC uint8 = 1
	RegD uint8 = 2
	RegE uint8 = 3
	RegH uint8 = 4
	RegL uint8 = 5
	RegIndirectHL uint8 = 6
	RegA uint8 = 7
)

// 16-bit register-pair indices as encoded in the "dd" field (BC/DE/HL/SP).
const (
	PairBC uint8 = 0
	PairDE uint8 = 1
	PairHL uint8 = 2
	PairSP uint8 = 3
)

// 16-bit register-pair indices as encoded in the "qq" field (BC/DE/HL/AF),
// used by PUSH/POP where AF replaces SP.
const (
	PairQQAF uint8 = 3
)

// Registers holds the SM83 register file: the AF/BC/DE/HL 16-bit pairs
// (each aliased over two 8-bit halves), the program counter, stack
// pointer, instruction register, and interrupt-enable register.
//
// F's low nibble is never allowed to carry a nonzero value; every setter
// that touches F masks it off, matching real SM83 behavior.
type Registers struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8
	SP   uint16
	PC   uint16
	IR   uint8
	IE   uint8
}

// Reset zeroes every register. Establishing the documented DMG post-boot
// values, if desired, is the caller's responsibility (e.g. a boot-ROM
// simulation layered above the core) — the core itself starts from zero.
func (r *Registers) Reset() {
	*r = Registers{}
}

// AF returns the combined 16-bit A/F pair.
func (r *Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F)
}

// SetAF sets A and F from a combined 16-bit value. F's low nibble is
// forced to zero.
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F = uint8(v) & 0xF0
}

// BC returns the combined 16-bit B/C pair.
func (r *Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// SetBC sets B and C from a combined 16-bit value.
func (r *Registers) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

// DE returns the combined 16-bit D/E pair.
func (r *Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// SetDE sets D and E from a combined 16-bit value.
func (r *Registers) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

// HL returns the combined 16-bit H/L pair.
func (r *Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetHL sets H and L from a combined 16-bit value.
func (r *Registers) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}

// Get8 reads an 8-bit register by its hardware r-index (0-7, per RegB..RegA
// above). Index 6, (HL), is not valid here; callers route it through
// memory instead.
func (r *Registers) Get8(index uint8) uint8 {
	switch index {
	case RegB:
		return r.B
	case RegC:
		return r.C
	case RegD:
		return r.D
	case RegE:
		return r.E
	case RegH:
		return r.H
	case RegL:
		return r.L
	case RegA:
		return r.A
	default:
		panic("cpu: Get8 called with (HL) or out-of-range index")
	}
}

// Set8 writes an 8-bit register by its hardware r-index. See Get8.
func (r *Registers) Set8(index uint8, v uint8) {
	switch index {
	case RegB:
		r.B = v
	case RegC:
		r.C = v
	case RegD:
		r.D = v
	case RegE:
		r.E = v
	case RegH:
		r.H = v
	case RegL:
		r.L = v
	case RegA:
		r.A = v
	default:
		panic("cpu: Set8 called with (HL) or out-of-range index")
	}
}

// Get16DD reads a 16-bit register pair by its "dd" index (BC/DE/HL/SP).
func (r *Registers) Get16DD(index uint8) uint16 {
	switch index {
	case PairBC:
		return r.BC()
	case PairDE:
		return r.DE()
	case PairHL:
		return r.HL()
	case PairSP:
		return r.SP
	default:
		panic("cpu: Get16DD out-of-range index")
	}
}

// Set16DD writes a 16-bit register pair by its "dd" index.
func (r *Registers) Set16DD(index uint8, v uint16) {
	switch index {
	case PairBC:
		r.SetBC(v)
	case PairDE:
		r.SetDE(v)
	case PairHL:
		r.SetHL(v)
	case PairSP:
		r.SP = v
	default:
		panic("cpu: Set16DD out-of-range index")
	}
}

// Get16QQ reads a 16-bit register pair by its "qq" index (BC/DE/HL/AF),
// used by PUSH.
func (r *Registers) Get16QQ(index uint8) uint16 {
	switch index {
	case PairBC:
		return r.BC()
	case PairDE:
		return r.DE()
	case PairHL:
		return r.HL()
	case PairQQAF:
		return r.AF()
	default:
		panic("cpu: Get16QQ out-of-range index")
	}
}

// Set16QQ writes a 16-bit register pair by its "qq" index, used by POP.
func (r *Registers) Set16QQ(index uint8, v uint16) {
	switch index {
	case PairBC:
		r.SetBC(v)
	case PairDE:
		r.SetDE(v)
	case PairHL:
		r.SetHL(v)
	case PairQQAF:
		r.SetAF(v)
	default:
		panic("cpu: Set16QQ out-of-range index")
	}
}

// Flag reports whether the given flag bit is set in F.
func (r *Registers) Flag(mask uint8) bool {
	return r.F&mask != 0
}

// SetFlag sets or clears the given flag bit in F.
func (r *Registers) SetFlag(mask uint8, set bool) {
	if set {
		r.F |= mask
	} else {
		r.F &^= mask
	}
}
