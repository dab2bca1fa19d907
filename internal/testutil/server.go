// Package testutil provides per-test fixtures: a GraphQL server over a fresh
// in-memory database, seeding helpers and command execution helpers.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/graphql"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/server"
	"github.com/thenoetrevino/tally/internal/types"
)

// TestServer is a running development backend private to one test
type TestServer struct {
	*httptest.Server
	Store   *database.Repository
	Metrics *server.Metrics
}

// NewTestServer starts a GraphQL server over a fresh in-memory database.
// Everything is torn down by t.Cleanup.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := database.NewRepository(db)
	metrics := server.NewMetrics()
	handler, err := server.NewHandler(server.Config{
		Store:   store,
		Metrics: metrics,
		Logger:  DiscardLogger(),
	})
	if err != nil {
		t.Fatalf("Failed to build server: %v", err)
	}

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &TestServer{Server: srv, Store: store, Metrics: metrics}
}

// Endpoint returns the GraphQL endpoint URL
func (s *TestServer) Endpoint() string {
	return s.URL + "/graphql"
}

// Client returns a GraphQL client pointed at the server
func (s *TestServer) Client() *graphql.Client {
	return graphql.NewClient(s.Endpoint(), graphql.WithLogger(DiscardLogger()))
}

// CreateDataset inserts a dataset with a fixed id and no records
func (s *TestServer) CreateDataset(t *testing.T, id types.DatasetID, program, name string) *models.Dataset {
	t.Helper()
	ds, err := s.Store.CreateDataset(context.Background(), id, program, name)
	if err != nil {
		t.Fatalf("Failed to create test dataset: %v", err)
	}
	return ds
}

// CreateRecord inserts a record and returns its id
func (s *TestServer) CreateRecord(t *testing.T, datasetID types.DatasetID, date string, data ...models.EntryInput) types.RecordID {
	t.Helper()
	summary, err := s.Store.CreateRecord(context.Background(), models.CreateRecordInput{
		DatasetID:       datasetID,
		PublicationDate: date,
		Data:            data,
	})
	if err != nil {
		t.Fatalf("Failed to create test record: %v", err)
	}
	return summary.ID
}

// Dataset loads a dataset straight from the store, bypassing the server
func (s *TestServer) Dataset(t *testing.T, id types.DatasetID) *models.Dataset {
	t.Helper()
	ds, err := s.Store.GetDataset(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to load test dataset: %v", err)
	}
	return ds
}

// Gender builds the three gender entries used across tests
func Gender(men, women, others int) []models.EntryInput {
	return []models.EntryInput{
		{Category: "gender", CategoryValue: "men", Count: men},
		{Category: "gender", CategoryValue: "women", Count: women},
		{Category: "gender", CategoryValue: "others", Count: others},
	}
}

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
