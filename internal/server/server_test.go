package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/graphql"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

type fixture struct {
	srv     *httptest.Server
	store   *database.Repository
	metrics *Metrics
	client  *graphql.Client
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := database.NewRepository(db)
	metrics := NewMetrics()
	handler, err := NewHandler(Config{
		Store:   store,
		Metrics: metrics,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &fixture{
		srv:     srv,
		store:   store,
		metrics: metrics,
		client:  graphql.NewClient(srv.URL + "/graphql"),
	}
}

func (f *fixture) dataset(t *testing.T) types.DatasetID {
	t.Helper()
	ds, err := f.store.CreateDataset(context.Background(), "", "Radio 1", "Morning Show")
	require.NoError(t, err)
	return ds.ID
}

func TestNewHandler_RequiresStore(t *testing.T) {
	_, err := NewHandler(Config{})
	assert.Error(t, err)
}

func TestHealthz(t *testing.T) {
	f := setup(t)

	resp, err := http.Get(f.srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestGetDataset_UnknownIsNull(t *testing.T) {
	f := setup(t)

	_, err := f.client.GetDataset(context.Background(), types.NewDatasetID())
	assert.ErrorIs(t, err, graphql.ErrNotFound)
}

func TestRecordLifecycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	datasetID := f.dataset(t)

	created, err := f.client.CreateRecord(ctx, models.CreateRecordInput{
		DatasetID:       datasetID,
		PublicationDate: "2024-05-01",
		Data: []models.EntryInput{
			{Category: "gender", CategoryValue: "men", Count: 3},
			{Category: "gender", CategoryValue: "women", Count: 4},
		},
	})
	require.NoError(t, err)
	assert.True(t, created.ID.Valid())
	assert.Equal(t, "Morning Show", created.Dataset.Name)

	updated, err := f.client.UpdateRecord(ctx, models.UpdateRecordInput{
		ID:              created.ID,
		DatasetID:       datasetID,
		PublicationDate: "2024-05-02",
		Data: []models.EntryInput{
			{Category: "gender", CategoryValue: "men", Count: 3},
			{Category: "gender", CategoryValue: "women", Count: 8},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02", updated.PublicationDate)
	require.Len(t, updated.Entries, 2)
	assert.Equal(t, 8, updated.Entries[1].Count)

	ds, err := f.client.GetDataset(ctx, datasetID)
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)
	assert.Equal(t, "Radio 1", ds.Program.Name)
	assert.Equal(t, 8, ds.Records[0].Entries[1].Count)

	deleted, err := f.client.DeleteRecord(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted)

	ds, err = f.client.GetDataset(ctx, datasetID)
	require.NoError(t, err)
	assert.Empty(t, ds.Records)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.operations.WithLabelValues("createRecord", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.operations.WithLabelValues("deleteRecord", "ok")))
}

func TestDeleteRecord_NotFoundIsGraphQLError(t *testing.T) {
	f := setup(t)

	_, err := f.client.DeleteRecord(context.Background(), "05caae8d-6d4b-4a47-9cf0-53b0c1d1f6a2")

	var gqlErr *graphql.Error
	require.ErrorAs(t, err, &gqlErr)
	assert.Contains(t, gqlErr.Error(), "record not found")
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.operations.WithLabelValues("deleteRecord", "error")))
}

func TestMutationValidation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	datasetID := f.dataset(t)

	tests := []struct {
		name  string
		input models.CreateRecordInput
		want  string
	}{
		{"bad date", models.CreateRecordInput{DatasetID: datasetID, PublicationDate: "May 1",
			Data: []models.EntryInput{{Category: "gender", CategoryValue: "men", Count: 1}}}, "YYYY-MM-DD"},
		{"negative count", models.CreateRecordInput{DatasetID: datasetID, PublicationDate: "2024-05-01",
			Data: []models.EntryInput{{Category: "gender", CategoryValue: "men", Count: -1}}}, "negative"},
		{"bad dataset id", models.CreateRecordInput{DatasetID: "not-a-uuid", PublicationDate: "2024-05-01",
			Data: []models.EntryInput{{Category: "gender", CategoryValue: "men", Count: 1}}}, "invalid id"},
		{"no entries", models.CreateRecordInput{DatasetID: datasetID, PublicationDate: "2024-05-01",
			Data: []models.EntryInput{}}, "at least one entry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.client.CreateRecord(ctx, tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestUpdateRecord_NoEntries(t *testing.T) {
	f := setup(t)

	_, err := f.client.UpdateRecord(context.Background(), models.UpdateRecordInput{
		ID:              types.NewRecordID(),
		PublicationDate: "2024-05-01",
		Data:            []models.EntryInput{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one entry")
}

func TestUpdateRecord_MissingID(t *testing.T) {
	f := setup(t)

	_, err := f.client.UpdateRecord(context.Background(), models.UpdateRecordInput{
		PublicationDate: "2024-05-01",
		Data:            []models.EntryInput{{Category: "gender", CategoryValue: "men", Count: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires an id")
}

func TestMetricsEndpoint(t *testing.T) {
	f := setup(t)
	_, _ = f.client.GetDataset(context.Background(), types.NewDatasetID())

	resp, err := http.Get(f.srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, `tally_graphql_operations_total{operation="dataset",outcome="ok"} 1`), text)
	assert.Contains(t, text, `tally_http_requests_total{method="POST",route="/graphql",status="200"} 1`)
}

func TestGraphQL_GetNotAllowed(t *testing.T) {
	f := setup(t)

	resp, err := http.Get(f.srv.URL + "/graphql")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
