// Package main is the entry point for the plint CLI application.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/eykd/promptlint-go/cmd"
)

func main() {
	// Create a context that is cancelled on SIGINT (Ctrl+C).
	// Validation is quick, but multi-file runs should still stop cleanly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
