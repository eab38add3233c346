package main

import (
	"fmt"
	"os"

	"sm83core/internal/conformance"
)

// ConformCmd replays a JSON vector file through the core and prints a
// pass/fail tally, plus the diff for up to MaxDiffs failing cases.
type ConformCmd struct {
	File     string `arg:"" help:"Path to a JSON conformance vector file."`
	MaxDiffs int    `default:"5" help:"Maximum number of failing-case diffs to print."`
}

func (c *ConformCmd) Run() error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("sm83: reading %s: %w", c.File, err)
	}

	cases, err := conformance.LoadCases(data)
	if err != nil {
		return err
	}

	results := conformance.RunAll(cases)
	passed, failed := conformance.Summarize(results)

	printed := 0
	for _, r := range results {
		if r.Pass {
			continue
		}
		if printed >= c.MaxDiffs {
			break
		}
		fmt.Printf("FAIL %s\n", r.Name)
		if r.Err != nil {
			fmt.Printf("  error: %v\n", r.Err)
		} else {
			fmt.Print(r.Diff)
		}
		printed++
	}

	fmt.Printf("%d passed, %d failed (of %d)\n", passed, failed, len(results))
	if failed > 0 {
		return ErrVectorFailures
	}
	return nil
}
