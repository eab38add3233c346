// Command sm83 drives an SM83 core outside of any test harness: trace a
// raw binary instruction by instruction, replay a JSON conformance vector
// file, or step through a loaded program in an interactive debugger.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

var (
	// ErrVectorFailures is returned by ConformCmd.Run when at least one
	// test vector in the file failed to match.
	ErrVectorFailures = errors.New("sm83: one or more conformance vectors failed")
)

// CLI is the root command, dispatched by kong to whichever sub-command the
// user named.
type CLI struct {
	Trace   TraceCmd   `cmd:"" help:"Step a loaded binary and print CPU state after each instruction."`
	Conform ConformCmd `cmd:"" help:"Replay a JSON conformance vector file against the core."`
	Debug   DebugCmd   `cmd:"" help:"Launch an interactive step debugger over a loaded binary."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sm83"),
		kong.Description("Tools for driving and inspecting an SM83 CPU core."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
