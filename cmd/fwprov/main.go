// Package main is the entry point for the fwprov CLI.
//
// fwprov provisions the group and project structures for research projects
// in a Flywheel instance from a declarative YAML description. Creation is
// idempotent: existing structures are detected and left untouched, so a
// project file can be re-applied safely.
//
// Commands: apply, init, version, completion.
//
// For detailed usage information, run:
//
//	fwprov --help
package main

import (
	"fmt"
	"os"

	"github.com/naccdata/fwprov/cmd/fwprov/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
