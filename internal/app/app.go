// Package app wires configuration, the backend client and the service layer
// into a single container shared by the TUI and the CLI.
package app

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/thenoetrevino/tally/internal/config"
	"github.com/thenoetrevino/tally/internal/graphql"
	"github.com/thenoetrevino/tally/internal/services/record"
)

// ErrNoEndpoint is returned when the configuration names no backend
var ErrNoEndpoint = errors.New("no backend endpoint configured")

// App holds all application services and provides dependency injection.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	// Client is the GraphQL transport shared by every service
	Client     *graphql.Client
	httpClient *http.Client

	// Service layer (business logic)
	RecordService record.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if cfg.Endpoint == "" {
		return nil, ErrNoEndpoint
	}
	if _, err := url.ParseRequestURI(cfg.Endpoint); err != nil {
		return nil, err
	}

	ac := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(ac)
	}

	httpClient := ac.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	client := graphql.NewClient(cfg.Endpoint,
		graphql.WithHTTPClient(httpClient),
		graphql.WithToken(cfg.Token),
		graphql.WithLogger(ac.logger),
	)

	return &App{
		Config:        cfg,
		Logger:        ac.logger,
		Client:        client,
		httpClient:    httpClient,
		RecordService: record.NewService(client, ac.logger),
	}, nil
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	a.httpClient.CloseIdleConnections()
	return nil
}
