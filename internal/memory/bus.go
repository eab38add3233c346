package memory

// VideoCollaborator is the read/write surface a video subsystem would
// occupy (VRAM and OAM). The core never implements one — Non-goals
// exclude pixel rendering and LCD timing entirely — but Bus still needs
// somewhere to route those address ranges when a collaborator is wired
// in, and a sane default (0xFF on read, silent drop on write) when one
// isn't.
type VideoCollaborator interface {
	ReadVRAM(addr uint16) uint8
	WriteVRAM(addr uint16, value uint8)
	ReadOAM(addr uint16) uint8
	WriteOAM(addr uint16, value uint8)
}

// AudioCollaborator is the register surface an audio subsystem would
// occupy (0xFF10-0xFF3F). Like VideoCollaborator, no implementation ships
// here — APU synthesis is explicitly out of scope — only the hook.
type AudioCollaborator interface {
	ReadAudio(addr uint16) uint8
	WriteAudio(addr uint16, value uint8)
}

// CartridgeCollaborator is the ROM/external-RAM surface a cartridge with
// bank switching would occupy. Bank-switching logic is explicitly out of
// scope; Bus only routes reads and writes to whatever is wired in.
type CartridgeCollaborator interface {
	ReadROM(addr uint16) uint8
	ReadExternalRAM(addr uint16) uint8
	WriteExternalRAM(addr uint16, value uint8) error
	WriteROM(addr uint16, value uint8) // bank-select writes, MBC-dependent
}

const (
	addrROMEnd       = 0x7FFF
	addrVRAMStart    = 0x8000
	addrVRAMEnd      = 0x9FFF
	addrExtRAMStart  = 0xA000
	addrExtRAMEnd    = 0xBFFF
	addrWRAMStart    = 0xC000
	addrWRAMEnd      = 0xDFFF
	addrEchoStart    = 0xE000
	addrEchoEnd      = 0xFDFF
	addrOAMStart     = 0xFE00
	addrOAMEnd       = 0xFE9F
	addrUnusedStart  = 0xFEA0
	addrUnusedEnd    = 0xFEFF
	addrIOStart      = 0xFF00
	addrAudioStart   = 0xFF10
	addrAudioEnd     = 0xFF3F
	addrIOEnd        = 0xFF7F
	addrHRAMStart    = 0xFF80
	addrHRAMEnd      = 0xFFFE
	addrIE           = 0xFFFF
)

// Bus is a minimal Game Boy system bus: WRAM, HRAM and a bare IO/IE
// register file live here directly, while VRAM/OAM, audio registers and
// ROM/external-RAM are routed to optional collaborators. An unwired
// collaborator reads back 0xFF and silently drops writes, matching how an
// open bus floats on real hardware.
type Bus struct {
	Video     VideoCollaborator
	Audio     AudioCollaborator
	Cartridge CartridgeCollaborator

	wram [addrWRAMEnd - addrWRAMStart + 1]uint8
	io   [addrIOEnd - addrIOStart + 1]uint8
	hram [addrHRAMEnd - addrHRAMStart + 1]uint8
	ie   uint8
}

// NewBus returns a Bus with no collaborators wired in.
func NewBus() *Bus {
	return &Bus{}
}

// Read implements cpu.Memory.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= addrROMEnd:
		if b.Cartridge != nil {
			return b.Cartridge.ReadROM(addr)
		}
		return 0xFF
	case addr <= addrVRAMEnd:
		if b.Video != nil {
			return b.Video.ReadVRAM(addr)
		}
		return 0xFF
	case addr <= addrExtRAMEnd:
		if b.Cartridge != nil {
			return b.Cartridge.ReadExternalRAM(addr)
		}
		return 0xFF
	case addr <= addrWRAMEnd:
		return b.wram[addr-addrWRAMStart]
	case addr <= addrEchoEnd:
		return b.wram[addr-addrEchoStart]
	case addr <= addrOAMEnd:
		if b.Video != nil {
			return b.Video.ReadOAM(addr)
		}
		return 0xFF
	case addr <= addrUnusedEnd:
		return 0xFF
	case addr < addrAudioStart:
		return b.io[addr-addrIOStart]
	case addr <= addrAudioEnd:
		if b.Audio != nil {
			return b.Audio.ReadAudio(addr)
		}
		return 0xFF
	case addr <= addrIOEnd:
		return b.io[addr-addrIOStart]
	case addr <= addrHRAMEnd:
		return b.hram[addr-addrHRAMStart]
	default: // addrIE
		return b.ie
	}
}

// Write implements cpu.Memory. Only cartridge external RAM can actually
// refuse a write (an MBC without RAM enabled, for instance); every other
// region either always accepts the write or silently drops it when no
// collaborator is wired in.
func (b *Bus) Write(addr uint16, value uint8) error {
	switch {
	case addr <= addrROMEnd:
		if b.Cartridge != nil {
			b.Cartridge.WriteROM(addr, value)
		}
		return nil
	case addr <= addrVRAMEnd:
		if b.Video != nil {
			b.Video.WriteVRAM(addr, value)
		}
		return nil
	case addr <= addrExtRAMEnd:
		if b.Cartridge != nil {
			return b.Cartridge.WriteExternalRAM(addr, value)
		}
		return nil
	case addr <= addrWRAMEnd:
		b.wram[addr-addrWRAMStart] = value
		return nil
	case addr <= addrEchoEnd:
		b.wram[addr-addrEchoStart] = value
		return nil
	case addr <= addrOAMEnd:
		if b.Video != nil {
			b.Video.WriteOAM(addr, value)
		}
		return nil
	case addr <= addrUnusedEnd:
		return nil
	case addr < addrAudioStart:
		b.io[addr-addrIOStart] = value
		return nil
	case addr <= addrAudioEnd:
		if b.Audio != nil {
			b.Audio.WriteAudio(addr, value)
		}
		return nil
	case addr <= addrIOEnd:
		b.io[addr-addrIOStart] = value
		return nil
	case addr <= addrHRAMEnd:
		b.hram[addr-addrHRAMStart] = value
		return nil
	default: // addrIE
		b.ie = value
		return nil
	}
}

// Reset clears WRAM, HRAM, IO and IE back to zero. Collaborators, if any
// are wired in, are left untouched — resetting them is their own
// responsibility.
func (b *Bus) Reset() {
	b.wram = [len(b.wram)]uint8{}
	b.io = [len(b.io)]uint8{}
	b.hram = [len(b.hram)]uint8{}
	b.ie = 0
}
