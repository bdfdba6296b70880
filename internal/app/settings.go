package app

import (
	"context"

	"go.trai.ch/pathforge/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
)

// GlobalOptions configures process-wide behavior before any command runs.
type GlobalOptions struct {
	// JSON switches the logger to structured JSON lines.
	JSON bool
	// Quiet drops informational log lines.
	Quiet bool
	// Trace installs a tracer provider that logs every finished span.
	Trace bool
}

type configurableLogger interface {
	SetJSON(enable bool)
	SetQuiet(quiet bool)
}

// Configure applies opts. Loggers that cannot be configured are left as is.
func (a *App) Configure(opts GlobalOptions) {
	if l, ok := a.logger.(configurableLogger); ok {
		l.SetJSON(opts.JSON)
		l.SetQuiet(opts.Quiet)
	}
	if opts.Trace && a.shutdown == nil {
		a.shutdown = telemetry.Setup(telemetry.NewBridge(a.logger))
	}
}

// Shutdown flushes and stops the tracer provider installed by Configure.
func (a *App) Shutdown(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	err := a.shutdown(ctx)
	a.shutdown = nil
	return err
}
