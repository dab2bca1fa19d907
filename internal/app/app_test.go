package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/thenoetrevino/tally/internal/config"
	"github.com/thenoetrevino/tally/internal/types"
)

func TestNew(t *testing.T) {
	app, err := New(config.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = app.Close() }()

	if app.Client == nil {
		t.Error("Expected Client to be initialized")
	}
	if app.RecordService == nil {
		t.Error("Expected RecordService to be initialized")
	}
	if app.httpClient.Timeout != config.DefaultRequestTimeout {
		t.Errorf("http timeout = %v, want %v", app.httpClient.Timeout, config.DefaultRequestTimeout)
	}
}

func TestNewNilConfigUsesDefaults(t *testing.T) {
	app, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	if app.Config.Endpoint != config.DefaultEndpoint {
		t.Errorf("Endpoint = %s, want %s", app.Config.Endpoint, config.DefaultEndpoint)
	}
}

func TestNewRejectsBadEndpoint(t *testing.T) {
	cfg := config.Default()
	cfg.Endpoint = ""
	if _, err := New(cfg); !errors.Is(err, ErrNoEndpoint) {
		t.Errorf("New() error = %v, want ErrNoEndpoint", err)
	}

	cfg.Endpoint = "not a url"
	if _, err := New(cfg); err == nil {
		t.Error("New() with relative endpoint should fail")
	}
}

// Security value: the configured token reaches the backend as a bearer header
func TestTokenIsSent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"dataset":null}}`))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Endpoint = srv.URL
	cfg.Token = "t0ken"
	cfg.RequestTimeout = 2 * time.Second

	app, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = app.Close() }()

	_, _ = app.RecordService.GetDataset(context.Background(), types.NewDatasetID())

	if got != "Bearer t0ken" {
		t.Errorf("Authorization = %q, want Bearer t0ken", got)
	}
}

func TestClose(t *testing.T) {
	app, err := New(config.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
