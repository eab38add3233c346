package cpu

import "testing"

func TestRegistersResetZeroesEverything(t *testing.T) {
	r := Registers{A: 1, F: 0xB0, B: 2, PC: 0x100, SP: 0xFFFE}
	r.Reset()
	if r.A != 0 || r.F != 0 || r.B != 0 || r.PC != 0 || r.SP != 0 {
		t.Errorf("Reset left nonzero state: %+v", r)
	}
}

func TestSetAFMasksLowNibble(t *testing.T) {
	var r Registers
	r.SetAF(0x1234)
	if r.A != 0x12 {
		t.Errorf("A = 0x%02X, want 0x12", r.A)
	}
	if r.F != 0x30 {
		t.Errorf("F = 0x%02X, want 0x30 (low nibble masked)", r.F)
	}
}

func TestBCPair(t *testing.T) {
	var r Registers
	r.SetBC(0xBEEF)
	if r.B != 0xBE || r.C != 0xEF {
		t.Errorf("B=0x%02X C=0x%02X, want B=0xBE C=0xEF", r.B, r.C)
	}
	if r.BC() != 0xBEEF {
		t.Errorf("BC() = 0x%04X, want 0xBEEF", r.BC())
	}
}

func TestGet8Set8RoundTrip(t *testing.T) {
	var r Registers
	r.Set8(RegH, 0x42)
	if got := r.Get8(RegH); got != 0x42 {
		t.Errorf("Get8(RegH) = 0x%02X, want 0x42", got)
	}
}

func Test16DDIndexing(t *testing.T) {
	var r Registers
	r.SP = 0xFFFE
	if got := r.Get16DD(PairSP); got != 0xFFFE {
		t.Errorf("Get16DD(PairSP) = 0x%04X, want 0xFFFE", got)
	}
}

func Test16QQUsesAFForIndex3(t *testing.T) {
	var r Registers
	r.SetAF(0x1230)
	if got := r.Get16QQ(PairQQAF); got != 0x1230 {
		t.Errorf("Get16QQ(PairQQAF) = 0x%04X, want 0x1230", got)
	}
}

func TestFlagHelpers(t *testing.T) {
	var r Registers
	r.SetFlag(FlagZ, true)
	if !r.Flag(FlagZ) {
		t.Errorf("expected FlagZ set")
	}
	r.SetFlag(FlagZ, false)
	if r.Flag(FlagZ) {
		t.Errorf("expected FlagZ clear")
	}
}
