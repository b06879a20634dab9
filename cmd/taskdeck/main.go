// Package main provides the entry point for the taskdeck CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/taskdeck/internal/cli"
)

// Build information, set at build time via ldflags.
var (
	version = "dev"     //nolint:gochecknoglobals // Set by ldflags
	commit  = "none"    //nolint:gochecknoglobals // Set by ldflags
	date    = "unknown" //nolint:gochecknoglobals // Set by ldflags
)

func main() {
	ctx := context.Background()

	err := cli.Execute(ctx, cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	cli.CloseLogFile()
	os.Exit(cli.ExitCodeForError(err))
}
