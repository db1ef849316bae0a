// Package main is the entry point for the namecheck CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/thoreinstein/namecheck/cmd/namecheck/commands"
	"github.com/thoreinstein/namecheck/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx)
	stop()
	if code := errors.Report(os.Stderr, err); code != errors.ExitSuccess {
		os.Exit(code)
	}
}
