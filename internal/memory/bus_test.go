package memory

import "testing"

func TestBusWRAMReadWrite(t *testing.T) {
	b := NewBus()
	if err := b.Write(0xC000, 0x99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Read(0xC000); got != 0x99 {
		t.Errorf("Read = 0x%02X, want 0x99", got)
	}
}

func TestBusEchoMirrorsWRAM(t *testing.T) {
	b := NewBus()
	_ = b.Write(0xC010, 0x5A)
	if got := b.Read(0xE010); got != 0x5A {
		t.Errorf("echo region did not mirror WRAM, got 0x%02X", got)
	}
}

func TestBusUnmappedVideoReadsDefault(t *testing.T) {
	b := NewBus()
	if got := b.Read(0x8000); got != 0xFF {
		t.Errorf("Read = 0x%02X, want 0xFF with no video collaborator", got)
	}
}

func TestBusUnmappedVideoWriteIsNoop(t *testing.T) {
	b := NewBus()
	if err := b.Write(0x8000, 0x12); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBusIERegister(t *testing.T) {
	b := NewBus()
	_ = b.Write(0xFFFF, 0x1F)
	if got := b.Read(0xFFFF); got != 0x1F {
		t.Errorf("IE = 0x%02X, want 0x1F", got)
	}
}

func TestBusHRAM(t *testing.T) {
	b := NewBus()
	_ = b.Write(0xFF80, 0x01)
	if got := b.Read(0xFF80); got != 0x01 {
		t.Errorf("HRAM = 0x%02X, want 0x01", got)
	}
}

type stubVideo struct {
	vram [0x2000]uint8
}

func (s *stubVideo) ReadVRAM(addr uint16) uint8       { return s.vram[addr-0x8000] }
func (s *stubVideo) WriteVRAM(addr uint16, v uint8)   { s.vram[addr-0x8000] = v }
func (s *stubVideo) ReadOAM(addr uint16) uint8        { return 0 }
func (s *stubVideo) WriteOAM(addr uint16, v uint8)    {}

func TestBusRoutesToVideoCollaborator(t *testing.T) {
	b := NewBus()
	b.Video = &stubVideo{}
	_ = b.Write(0x8005, 0x77)
	if got := b.Read(0x8005); got != 0x77 {
		t.Errorf("Read = 0x%02X, want 0x77 via video collaborator", got)
	}
}

func TestBusResetClearsWRAM(t *testing.T) {
	b := NewBus()
	_ = b.Write(0xC000, 0xAA)
	b.Reset()
	if got := b.Read(0xC000); got != 0 {
		t.Errorf("Read after Reset = 0x%02X, want 0x00", got)
	}
}
