// Package conformance replays JSON reference test vectors (the
// single-step-test format used across SM83 emulator test suites) against
// an internal/cpu.CPU, and reports where the two disagree.
package conformance

import (
	"encoding/json"
	"fmt"

	"sm83core/internal/cpu"
	"sm83core/internal/memory"
)

// State is one side (initial or final) of a test vector: the register
// file plus every RAM address/value pair the vector cares about.
type State struct {
	A   uint8      `json:"a"`
	B   uint8      `json:"b"`
	C   uint8      `json:"c"`
	D   uint8      `json:"d"`
	E   uint8      `json:"e"`
	F   uint8      `json:"f"`
	H   uint8      `json:"h"`
	L   uint8      `json:"l"`
	PC  uint16     `json:"pc"`
	SP  uint16     `json:"sp"`
	IME uint8      `json:"ime"`
	IE  uint8      `json:"ie"`
	RAM [][2]int64 `json:"ram"`
}

// Case is a single named test vector: a starting state, the state it must
// reach after exactly one CPU.Step, and the cycle count spent getting
// there (recorded but not independently checked — Step's own cycle
// counter is the source of truth once the run completes).
type Case struct {
	Name    string    `json:"name"`
	Initial State     `json:"initial"`
	Final   State     `json:"final"`
	Cycles  []any     `json:"cycles"`
}

// LoadCases parses a JSON document holding an array of test vectors.
func LoadCases(data []byte) ([]Case, error) {
	var cases []Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("conformance: decoding vector file: %w", err)
	}
	return cases, nil
}

// Result is the outcome of replaying one Case.
type Result struct {
	Name string
	Pass bool
	Diff string
	Err  error
}

// ramPairs converts a State's [addr,value] pairs from the JSON int64 shape
// down to the uint16/uint8 pairs FlatRAM expects.
func ramPairs(s State) [][2]uint16 {
	out := make([][2]uint16, len(s.RAM))
	for i, p := range s.RAM {
		out[i] = [2]uint16{uint16(p[0]), uint16(p[1])}
	}
	return out
}

func ramAddrs(s State) []uint16 {
	out := make([]uint16, len(s.RAM))
	for i, p := range s.RAM {
		out[i] = uint16(p[0])
	}
	return out
}

func stateSnapshot(s State) cpu.Snapshot {
	return cpu.Snapshot{}.
		WithA(s.A).WithF(s.F).
		WithB(s.B).WithC(s.C).
		WithD(s.D).WithE(s.E).
		WithH(s.H).WithL(s.L).
		WithSP(s.SP).WithPC(s.PC).
		WithIE(s.IE).WithIME(s.IME != 0)
}

// Run replays a single Case: loads Initial into a fresh CPU and FlatRAM,
// performs the one manual prefetch the protocol requires (setting IR from
// the byte at PC and advancing PC before the clock starts), executes a
// single Step, and compares the result against Final. Final.PC is
// expected to be one greater than the vector's recorded value, since the
// vector format captures PC at the point execution logically finished,
// before this protocol's own prefetch-overlap advances it again.
func Run(c Case) Result {
	ram := memory.NewFlatRAM()
	ram.LoadRAMPairs(ramPairs(c.Initial))

	var core cpu.CPU
	core.LoadSnapshot(stateSnapshot(c.Initial))
	core.Reg.IR = ram.Read(c.Initial.PC)
	core.Reg.PC = c.Initial.PC + 1

	if err := core.Step(ram); err != nil {
		return Result{Name: c.Name, Pass: false, Err: err}
	}

	got := core.ToSnapshot()

	// The vector format has no address_bus/data_bus/ir fields. Step's
	// post-execution prefetch leaves them holding the prefetch's address
	// and byte, so comparing them against a zeroed want would report
	// spurious mismatches. Seed them from got so Compare only reports the
	// fields the vector actually carries.
	want := stateSnapshot(c.Final).
		WithPC(c.Final.PC + 1).
		WithAddressBus(got.AddressBus).
		WithDataBus(got.DataBus).
		WithIR(got.IR)
	diff := got.Compare(want)

	for _, addr := range ramAddrs(c.Final) {
		wantVal := uint8(0)
		for _, p := range c.Final.RAM {
			if uint16(p[0]) == addr {
				wantVal = uint8(p[1])
			}
		}
		if gotVal := ram.Read(addr); gotVal != wantVal {
			diff += fmt.Sprintf("ram[0x%04X] mismatch: got %v want %v\n", addr, gotVal, wantVal)
		}
	}

	return Result{Name: c.Name, Pass: diff == "", Diff: diff}
}

// RunAll replays every case in cases and returns one Result per case, in
// order.
func RunAll(cases []Case) []Result {
	results := make([]Result, len(cases))
	for i, c := range cases {
		results[i] = Run(c)
	}
	return results
}

// Summarize counts passes and failures across a batch of Results.
func Summarize(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Pass {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
