// Package memory provides concrete cpu.Memory implementations: a flat,
// fully-addressable RAM for driving the core against conformance test
// vectors, and a small system bus that decodes a handful of real address
// ranges and exposes hook interfaces for the video, audio and cartridge
// collaborators the core never implements itself.
package memory

import "errors"

// ErrWriteRefused is returned by FlatRAM.Write when addr falls inside a
// locked region. Step drops this error silently; it exists so a caller
// driving the memory directly (a test harness asserting "this write must
// be refused") has something to check against.
var ErrWriteRefused = errors.New("memory: write refused")

// FlatRAM is a flat 64 KiB byte-addressable store with total read
// coverage and an optional locked region whose writes are refused —
// modeled on a boot-ROM lock register: while Locked is true, writes
// landing in [LockStart, LockEnd] are rejected rather than stored.
type FlatRAM struct {
	data [0x10000]uint8

	Locked    bool
	LockStart uint16
	LockEnd   uint16
}

// NewFlatRAM returns a zeroed 64 KiB RAM with no locked region.
func NewFlatRAM() *FlatRAM {
	return &FlatRAM{}
}

// Read returns the byte at addr. Every address in the 64 KiB space is
// backed by storage, so Read never fails.
func (m *FlatRAM) Read(addr uint16) uint8 {
	return m.data[addr]
}

// Write stores value at addr, unless addr falls within a currently locked
// region, in which case the write is refused and the store left
// unmodified.
func (m *FlatRAM) Write(addr uint16, value uint8) error {
	if m.Locked && addr >= m.LockStart && addr <= m.LockEnd {
		return ErrWriteRefused
	}
	m.data[addr] = value
	return nil
}

// LoadRAMPairs applies a list of [address, value] pairs directly to
// backing storage, bypassing the lock check — the format conformance test
// vectors use to describe initial and expected RAM contents.
func (m *FlatRAM) LoadRAMPairs(pairs [][2]uint16) {
	for _, p := range pairs {
		m.data[p[0]] = uint8(p[1])
	}
}

// DumpRAMPairs returns the current value at each of the given addresses,
// in the same [address, value] shape LoadRAMPairs accepts — used to
// compare a post-Step RAM state against a test vector's expected values.
func (m *FlatRAM) DumpRAMPairs(addrs []uint16) [][2]uint16 {
	out := make([][2]uint16, len(addrs))
	for i, a := range addrs {
		out[i] = [2]uint16{a, uint16(m.data[a])}
	}
	return out
}
