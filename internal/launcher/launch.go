// Package launcher starts the interactive TUI for one dataset
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tally/internal/app"
	"github.com/thenoetrevino/tally/internal/config"
	"github.com/thenoetrevino/tally/internal/logging"
	"github.com/thenoetrevino/tally/internal/tui"
	"github.com/thenoetrevino/tally/internal/types"
)

// ErrInvalidDataset is returned when the dataset id given is not a UUID
var ErrInvalidDataset = errors.New("dataset id must be a UUID")

// Launch starts the TUI application
func Launch(datasetID types.DatasetID) error {
	if !datasetID.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDataset, datasetID)
	}

	// Initialize logging to file before anything else
	logFile, err := logging.Init("tally")
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.New(cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	slog.Info("starting tui", "dataset_id", datasetID, "endpoint", cfg.Endpoint)

	model := tui.InitialModel(ctx, application.RecordService, cfg, datasetID)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
