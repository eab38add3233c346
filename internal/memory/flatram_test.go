package memory

import (
	"errors"
	"testing"
)

func TestFlatRAMReadWrite(t *testing.T) {
	ram := NewFlatRAM()
	if err := ram.Write(0x1234, 0x42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ram.Read(0x1234); got != 0x42 {
		t.Errorf("Read = 0x%02X, want 0x42", got)
	}
}

func TestFlatRAMUnwrittenReadsZero(t *testing.T) {
	ram := NewFlatRAM()
	if got := ram.Read(0x9999); got != 0 {
		t.Errorf("Read = 0x%02X, want 0x00", got)
	}
}

func TestFlatRAMLockedRegionRefusesWrites(t *testing.T) {
	ram := NewFlatRAM()
	ram.Locked = true
	ram.LockStart = 0x0000
	ram.LockEnd = 0x00FF

	err := ram.Write(0x0050, 0xFF)
	if !errors.Is(err, ErrWriteRefused) {
		t.Fatalf("expected ErrWriteRefused, got %v", err)
	}
	if got := ram.Read(0x0050); got != 0x00 {
		t.Errorf("refused write must not modify storage, got 0x%02X", got)
	}
}

func TestFlatRAMLoadAndDumpRAMPairs(t *testing.T) {
	ram := NewFlatRAM()
	ram.LoadRAMPairs([][2]uint16{{0, 1}, {1, 2}, {2, 3}})
	dump := ram.DumpRAMPairs([]uint16{0, 1, 2})
	want := [][2]uint16{{0, 1}, {1, 2}, {2, 3}}
	for i := range want {
		if dump[i] != want[i] {
			t.Errorf("dump[%d] = %v, want %v", i, dump[i], want[i])
		}
	}
}

func TestFlatRAMLoadRAMPairsBypassesLock(t *testing.T) {
	ram := NewFlatRAM()
	ram.Locked = true
	ram.LockStart = 0
	ram.LockEnd = 0xFF
	ram.LoadRAMPairs([][2]uint16{{0x10, 0x55}})
	if got := ram.Read(0x10); got != 0x55 {
		t.Errorf("LoadRAMPairs must bypass the lock, got 0x%02X", got)
	}
}
