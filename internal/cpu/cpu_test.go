package cpu

import "testing"

type mockMemory struct {
	data [0x10000]uint8
}

func (m *mockMemory) Read(addr uint16) uint8 {
	return m.data[addr]
}

func (m *mockMemory) Write(addr uint16, value uint8) error {
	m.data[addr] = value
	return nil
}

func loadProgram(m *mockMemory, at uint16, bytes ...uint8) {
	for i, b := range bytes {
		m.data[at+uint16(i)] = b
	}
}

// primeFetch performs the one manual prefetch a test harness must do
// before the first Step call: read the opcode at PC into IR and advance
// PC, without ticking the cycle counter (that prefetch is considered to
// have happened "before the clock started", per the conformance vector
// protocol).
func primeFetch(c *CPU, mem *mockMemory) {
	c.Reg.IR = mem.Read(c.Reg.PC)
	c.Reg.PC++
}

func TestStepLDBn(t *testing.T) {
	mem := &mockMemory{}
	loadProgram(mem, 0, 0x06, 0xAB, 0xCD)

	c := &CPU{}
	primeFetch(c, mem)

	if err := c.Step(mem); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if c.Reg.B != 0xAB {
		t.Errorf("B = 0x%02X, want 0xAB", c.Reg.B)
	}
	if c.Reg.PC != 3 {
		t.Errorf("PC = %d, want 3", c.Reg.PC)
	}
	if c.Reg.IR != 0xCD {
		t.Errorf("IR = 0x%02X, want 0xCD", c.Reg.IR)
	}
	if _, lo := c.Cycles(); lo != 2 {
		t.Errorf("cycles = %d, want 2", lo)
	}
}

func TestStepNOP(t *testing.T) {
	mem := &mockMemory{}
	loadProgram(mem, 0, 0x00, 0x00)

	c := &CPU{}
	primeFetch(c, mem)
	if err := c.Step(mem); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if c.Reg.PC != 2 {
		t.Errorf("PC = %d, want 2", c.Reg.PC)
	}
	if _, lo := c.Cycles(); lo != 1 {
		t.Errorf("cycles = %d, want 1", lo)
	}
}

func TestStepADDSetsFlags(t *testing.T) {
	mem := &mockMemory{}
	loadProgram(mem, 0, 0x80, 0x00) // ADD A,B
	c := &CPU{}
	c.Reg.A = 0xFF
	c.Reg.B = 0x01
	primeFetch(c, mem)
	if err := c.Step(mem); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if c.Reg.A != 0x00 {
		t.Errorf("A = 0x%02X, want 0x00", c.Reg.A)
	}
	if !c.Reg.Flag(FlagZ) {
		t.Errorf("expected zero flag set")
	}
	if !c.Reg.Flag(FlagC) {
		t.Errorf("expected carry flag set")
	}
}

func TestStepUnknownOpcodeIsFatal(t *testing.T) {
	mem := &mockMemory{}
	loadProgram(mem, 0, 0xD3, 0x00)
	c := &CPU{}
	primeFetch(c, mem)

	err := c.Step(mem)
	if err == nil {
		t.Fatalf("expected an error for opcode 0xD3")
	}
	var unknownErr *UnknownOpcodeError
	if !asUnknownOpcodeError(err, &unknownErr) {
		t.Fatalf("expected *UnknownOpcodeError, got %T", err)
	}
	if unknownErr.Opcode != 0xD3 {
		t.Errorf("Opcode = 0x%02X, want 0xD3", unknownErr.Opcode)
	}
}

func asUnknownOpcodeError(err error, target **UnknownOpcodeError) bool {
	e, ok := err.(*UnknownOpcodeError)
	if ok {
		*target = e
	}
	return ok
}

func TestEIIsDeferredByOneInstruction(t *testing.T) {
	mem := &mockMemory{}
	// EI ; NOP ; NOP
	loadProgram(mem, 0, 0xFB, 0x00, 0x00, 0x00)
	c := &CPU{}
	primeFetch(c, mem)

	if err := c.Step(mem); err != nil { // executes EI
		t.Fatalf("Step returned error: %v", err)
	}
	if c.IME {
		t.Errorf("IME must still be false immediately after EI")
	}

	if err := c.Step(mem); err != nil { // executes the NOP right after EI
		t.Fatalf("Step returned error: %v", err)
	}
	if !c.IME {
		t.Errorf("IME must become true once the instruction after EI has executed")
	}
}

func TestDIIsImmediate(t *testing.T) {
	mem := &mockMemory{}
	loadProgram(mem, 0, 0xF3, 0x00)
	c := &CPU{}
	c.IME = true
	primeFetch(c, mem)
	if err := c.Step(mem); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if c.IME {
		t.Errorf("DI must clear IME immediately")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	mem := &mockMemory{}
	loadProgram(mem, 0, 0x00)
	c := &CPU{}
	c.Reg.A = 0x12
	c.Reg.SetBC(0x3456)
	c.Reg.PC = 0x0100
	c.IME = true

	snap := c.ToSnapshot()

	var c2 CPU
	c2.LoadSnapshot(snap)
	if diff := c2.ToSnapshot().Compare(snap); diff != "" {
		t.Errorf("round-tripped snapshot differs:\n%s", diff)
	}
}

func TestResetPerformsOneFetch(t *testing.T) {
	mem := &mockMemory{}
	loadProgram(mem, 0, 0x3E) // LD A,n at address 0
	c := &CPU{}
	c.Reset(mem)
	if c.Reg.IR != 0x3E {
		t.Errorf("IR = 0x%02X, want 0x3E after Reset", c.Reg.IR)
	}
	if c.Reg.PC != 1 {
		t.Errorf("PC = %d, want 1 after Reset", c.Reg.PC)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	mem := &mockMemory{}
	loadProgram(mem, 0, 0xC5, 0xD1) // PUSH BC ; POP DE
	c := &CPU{}
	c.Reg.SetBC(0xBEEF)
	c.Reg.SP = 0xFFFE
	primeFetch(c, mem)

	if err := c.Step(mem); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if c.Reg.SP != 0xFFFC {
		t.Errorf("SP = 0x%04X, want 0xFFFC after PUSH", c.Reg.SP)
	}

	if err := c.Step(mem); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if c.Reg.DE() != 0xBEEF {
		t.Errorf("DE = 0x%04X, want 0xBEEF after POP", c.Reg.DE())
	}
	if c.Reg.SP != 0xFFFE {
		t.Errorf("SP = 0x%04X, want 0xFFFE after POP", c.Reg.SP)
	}
}
