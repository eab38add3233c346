package main

import (
	"fmt"
	"os"

	"sm83core/internal/cpu"
	"sm83core/internal/memory"
)

// TraceCmd loads a raw binary into a flat RAM at a given address, primes
// the core there, and steps it a fixed number of times, printing a
// snapshot after each step (or only the final one, with Quiet).
type TraceCmd struct {
	ROM   string `arg:"" help:"Path to a raw binary to load."`
	At    uint16 `default:"0" help:"Address to load the binary at and start execution from."`
	Steps int    `default:"10" help:"Number of instructions to execute."`
	Quiet bool   `help:"Only print the final CPU state."`
}

func (t *TraceCmd) Run() error {
	data, err := os.ReadFile(t.ROM)
	if err != nil {
		return fmt.Errorf("sm83: reading %s: %w", t.ROM, err)
	}

	ram := memory.NewFlatRAM()
	ram.LoadRAMPairs(ramPairsFrom(t.At, data))

	var core cpu.CPU
	core.Prime(ram, t.At)

	for i := 0; i < t.Steps; i++ {
		if err := core.Step(ram); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		if !t.Quiet {
			printSnapshot(core.ToSnapshot())
		}
	}
	if t.Quiet {
		printSnapshot(core.ToSnapshot())
	}
	return nil
}

func ramPairsFrom(base uint16, data []byte) [][2]uint16 {
	pairs := make([][2]uint16, len(data))
	for i, b := range data {
		pairs[i] = [2]uint16{base + uint16(i), uint16(b)}
	}
	return pairs
}

func printSnapshot(s cpu.Snapshot) {
	fmt.Printf("A=%02X F=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X SP=%04X PC=%04X IME=%v\n",
		s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC, s.IME)
}
