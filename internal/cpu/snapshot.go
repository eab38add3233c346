package cpu

import "fmt"

// Snapshot is a complete, comparable capture of CPU state: both visible
// registers and the internal address/data bus latches. It is the unit of
// exchange with test harnesses — LoadSnapshot/ToSnapshot round-trip it
// against a running CPU, and Compare reports every field that differs
// between two captures.
type Snapshot struct {
	AddressBus uint16
	DataBus    uint8
	IR         uint8
	IE         uint8
	A, F       uint8
	B, C       uint8
	D, E       uint8
	H, L       uint8
	SP         uint16
	PC         uint16
	IME        bool
}

// WithAddressBus returns a copy of s with AddressBus set.
func (s Snapshot) WithAddressBus(v uint16) Snapshot { s.AddressBus = v; return s }

// WithDataBus returns a copy of s with DataBus set.
func (s Snapshot) WithDataBus(v uint8) Snapshot { s.DataBus = v; return s }

// WithIR returns a copy of s with IR set.
func (s Snapshot) WithIR(v uint8) Snapshot { s.IR = v; return s }

// WithIE returns a copy of s with IE set.
func (s Snapshot) WithIE(v uint8) Snapshot { s.IE = v; return s }

// WithA returns a copy of s with A set.
func (s Snapshot) WithA(v uint8) Snapshot { s.A = v; return s }

// WithF returns a copy of s with F set (low nibble forced to zero).
func (s Snapshot) WithF(v uint8) Snapshot { s.F = v & 0xF0; return s }

// WithAF returns a copy of s with A and F set from a combined value.
func (s Snapshot) WithAF(v uint16) Snapshot {
	s.A = uint8(v >> 8)
	s.F = uint8(v) & 0xF0
	return s
}

// WithB returns a copy of s with B set.
func (s Snapshot) WithB(v uint8) Snapshot { s.B = v; return s }

// WithC returns a copy of s with C set.
func (s Snapshot) WithC(v uint8) Snapshot { s.C = v; return s }

// WithBC returns a copy of s with B and C set from a combined value.
func (s Snapshot) WithBC(v uint16) Snapshot {
	s.B = uint8(v >> 8)
	s.C = uint8(v)
	return s
}

// WithD returns a copy of s with D set.
func (s Snapshot) WithD(v uint8) Snapshot { s.D = v; return s }

// WithE returns a copy of s with E set.
func (s Snapshot) WithE(v uint8) Snapshot { s.E = v; return s }

// WithDE returns a copy of s with D and E set from a combined value.
func (s Snapshot) WithDE(v uint16) Snapshot {
	s.D = uint8(v >> 8)
	s.E = uint8(v)
	return s
}

// WithH returns a copy of s with H set.
func (s Snapshot) WithH(v uint8) Snapshot { s.H = v; return s }

// WithL returns a copy of s with L set.
func (s Snapshot) WithL(v uint8) Snapshot { s.L = v; return s }

// WithHL returns a copy of s with H and L set from a combined value.
func (s Snapshot) WithHL(v uint16) Snapshot {
	s.H = uint8(v >> 8)
	s.L = uint8(v)
	return s
}

// WithSP returns a copy of s with SP set.
func (s Snapshot) WithSP(v uint16) Snapshot { s.SP = v; return s }

// WithPC returns a copy of s with PC set.
func (s Snapshot) WithPC(v uint16) Snapshot { s.PC = v; return s }

// WithIME returns a copy of s with IME set.
func (s Snapshot) WithIME(v bool) Snapshot { s.IME = v; return s }

// Compare reports every field in which s differs from other, one line per
// field, in a fixed field order. It returns the empty string when the two
// snapshots are identical.
func (s Snapshot) Compare(other Snapshot) string {
	out := ""
	line := func(name string, got, want any) {
		out += fmt.Sprintf("%s mismatch: got %v want %v\n", name, got, want)
	}

	if s.AddressBus != other.AddressBus {
		line("address_bus", s.AddressBus, other.AddressBus)
	}
	if s.DataBus != other.DataBus {
		line("data_bus", s.DataBus, other.DataBus)
	}
	if s.IR != other.IR {
		line("ir", s.IR, other.IR)
	}
	if s.IE != other.IE {
		line("ie", s.IE, other.IE)
	}
	if s.A != other.A {
		line("a", s.A, other.A)
	}
	if s.F != other.F {
		line("f", s.F, other.F)
	}
	if s.B != other.B {
		line("b", s.B, other.B)
	}
	if s.C != other.C {
		line("c", s.C, other.C)
	}
	if s.D != other.D {
		line("d", s.D, other.D)
	}
	if s.E != other.E {
		line("e", s.E, other.E)
	}
	if s.H != other.H {
		line("h", s.H, other.H)
	}
	if s.L != other.L {
		line("l", s.L, other.L)
	}
	if s.SP != other.SP {
		line("sp", s.SP, other.SP)
	}
	if s.PC != other.PC {
		line("pc", s.PC, other.PC)
	}
	if s.IME != other.IME {
		line("ime", s.IME, other.IME)
	}
	return out
}
