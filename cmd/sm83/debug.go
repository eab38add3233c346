package main

import (
	"fmt"
	"os"

	"sm83core/internal/cpu"
	"sm83core/internal/debugger"
	"sm83core/internal/memory"
)

// DebugCmd loads a raw binary and launches the interactive step debugger
// over it.
type DebugCmd struct {
	ROM string `arg:"" help:"Path to a raw binary to load."`
	At  uint16 `default:"0" help:"Address to load the binary at and start execution from."`
}

func (d *DebugCmd) Run() error {
	data, err := os.ReadFile(d.ROM)
	if err != nil {
		return fmt.Errorf("sm83: reading %s: %w", d.ROM, err)
	}

	ram := memory.NewFlatRAM()
	ram.LoadRAMPairs(ramPairsFrom(d.At, data))

	var core cpu.CPU
	core.Prime(ram, d.At)

	return debugger.Debug(&core, ram)
}
