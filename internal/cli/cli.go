// Package cli holds the shared plumbing of the non-interactive commands:
// application setup, output formatting, exit codes and flag parsing.
package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tally/internal/app"
	"github.com/thenoetrevino/tally/internal/config"
	"github.com/thenoetrevino/tally/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	ctx context.Context
}

// NewCLI loads the configuration and builds the application container.
// Commands log through the package logger, never to the terminal.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.New(cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return &CLI{
		App: application,
		ctx: ctx,
	}, nil
}

// Context returns the context commands should run backend calls under
func (c *CLI) Context() context.Context {
	return c.ctx
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
