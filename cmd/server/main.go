// Command server runs the development GraphQL backend over a SQLite file
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/logging"
	"github.com/thenoetrevino/tally/internal/server"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	if err := newServerCmd().ExecuteContext(ctx); err != nil {
		slog.Error("server error", "error", err)
		cancel()
		os.Exit(1)
	}
}

func newServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tally-server",
		Short:        "Development GraphQL backend for tally",
		SilenceUsage: true,
		RunE:         runServer,
	}

	cmd.Flags().String("addr", envOr("TALLY_SERVER_ADDR", server.DefaultAddr), "Listen address")
	cmd.Flags().String("db", os.Getenv("TALLY_DB"), "SQLite database path (default ~/.tally/tally.db, :memory: for none)")
	cmd.Flags().Bool("seed", false, "Create the demo dataset if it is missing")
	cmd.Flags().Bool("debug", false, "Log at debug level")

	return cmd
}

func runServer(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	dbPath, _ := cmd.Flags().GetString("db")
	seed, _ := cmd.Flags().GetBool("seed")
	debug, _ := cmd.Flags().GetBool("debug")

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := logging.Setup(os.Stderr, level)

	ctx := cmd.Context()

	if dbPath == "" {
		var err error
		if dbPath, err = database.DefaultPath(); err != nil {
			return err
		}
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	store := database.NewRepository(db)
	if seed {
		id, err := database.SeedDemo(ctx, store)
		if err != nil {
			return err
		}
		logger.Info("demo dataset ready", "dataset_id", id)
	}

	logger.Info("tally server starting", "addr", addr, "db", dbPath, "pid", os.Getpid())

	// Start the server (blocks until shutdown)
	if err := server.Run(ctx, server.Config{
		Addr:   addr,
		Store:  store,
		Logger: logger,
	}); err != nil {
		return err
	}

	logger.Info("tally server shutting down gracefully")
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
