// Package main is the entry point for the gemmatrix CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/gemmatrix/cmd/gemmatrix/commands"
	"go.trai.ch/gemmatrix/internal/app"
	"go.trai.ch/gemmatrix/internal/core/domain"
	_ "go.trai.ch/gemmatrix/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// outputSetter is implemented by loggers whose destination can be changed.
type outputSetter interface {
	SetOutput(w io.Writer)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout io.Writer,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	if s, ok := components.Logger.(outputSetter); ok {
		s.SetOutput(stderr)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// Validation failures keep their exact one-line message.
		var cfgErr *domain.ConfigError
		if errors.As(err, &cfgErr) {
			_, _ = fmt.Fprintln(stderr, cfgErr.Error())
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
