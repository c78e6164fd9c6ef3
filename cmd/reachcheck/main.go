package main

import (
	"os"

	"github.com/ryanelliottsmith/reachcheck/cmd/reachcheck/commands"
)

// Version information (set via ldflags at build time)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, buildDate)

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
