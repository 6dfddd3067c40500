// Package main is the entry point for the modgraph tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/modgraph/cmd/modgraph/commands"
	"go.trai.ch/modgraph/internal/app"
	_ "go.trai.ch/modgraph/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	if f, ok := components.Logger.(commands.LogFormat); ok {
		cli.WithLogFormat(f)
	}
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	execErr := cli.Execute(ctx)

	if components.Telemetry != nil {
		if err := components.Telemetry.Close(); err != nil {
			components.Logger.Warn("failed to close progress recording: " + err.Error())
		}
	}

	if execErr != nil {
		components.Logger.Error(execErr)
		return 1
	}
	return 0
}
