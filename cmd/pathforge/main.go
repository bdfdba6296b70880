// Package main is the entry point for the pathforge CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/pathforge/cmd/pathforge/commands"
	"go.trai.ch/pathforge/internal/app"
	"go.trai.ch/pathforge/internal/core/domain"
	_ "go.trai.ch/pathforge/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// The logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrNoPathFound) {
			components.Logger.Warn(err.Error())
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
