package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/dataset"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/testutil"
	"github.com/thenoetrevino/tally/internal/types"
)

const showDataset types.DatasetID = "5a8ee1d5-2f6f-4c3b-a8a7-0e1b7d3c9f10"

func setupShow(t *testing.T) *testutil.TestServer {
	t.Helper()
	srv := testutil.NewTestServer(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TALLY_ENDPOINT", srv.Endpoint())
	t.Setenv("TALLY_THEME_FILE", "")
	srv.CreateDataset(t, showDataset, "Radio 1", "Morning Show guests")
	return srv
}

func TestShowRaw(t *testing.T) {
	srv := setupShow(t)
	id := srv.CreateRecord(t, showDataset, "2024-03-01", testutil.Gender(1, 5, 0)...)

	stdout, _, err := testutil.ExecuteCommand(t, dataset.DatasetCmd(), "show", "--id", showDataset.String(), "--raw")
	require.NoError(t, err)

	assert.Contains(t, stdout, "# Radio 1 / Morning Show guests")
	assert.Contains(t, stdout, "| ID | Date | men | women | others |")
	assert.Contains(t, stdout, "| "+id.String()+" | 2024-03-01 | 1 | 5 | 0 |")
	assert.Contains(t, stdout, "1 record(s)")
}

func TestShowStyled(t *testing.T) {
	srv := setupShow(t)
	srv.CreateRecord(t, showDataset, "2024-03-01", testutil.Gender(1, 5, 0)...)

	stdout, _, err := testutil.ExecuteCommand(t, dataset.DatasetCmd(), "show", "--id", showDataset.String())
	require.NoError(t, err)
	assert.Contains(t, stdout, "2024-03-01")
}

func TestShowJSON(t *testing.T) {
	srv := setupShow(t)
	srv.CreateRecord(t, showDataset, "2024-03-01", testutil.Gender(1, 5, 0)...)

	stdout, _, err := testutil.ExecuteCommand(t, dataset.DatasetCmd(), "show", "--id", showDataset.String(), "--json")
	require.NoError(t, err)

	result := testutil.ParseJSON(t, stdout)
	assert.Equal(t, true, result["success"])
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "data should be an object: %s", stdout)
	assert.Equal(t, "Morning Show guests", data["name"])
	records, ok := data["records"].([]any)
	require.True(t, ok)
	assert.Len(t, records, 1)
}

func TestShowUnknownDataset(t *testing.T) {
	setupShow(t)

	_, stderr, err := testutil.ExecuteCommand(t, dataset.DatasetCmd(), "show", "--id", "05caae8d-6d4b-4a47-9cf0-53b0c1d1f6a2")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	assert.Contains(t, stderr, "Error")
}

func TestShowMalformedID(t *testing.T) {
	setupShow(t)

	_, _, err := testutil.ExecuteCommand(t, dataset.DatasetCmd(), "show", "--id", "not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
}

func TestRenderMarkdownEmpty(t *testing.T) {
	md := dataset.RenderMarkdown(&models.Dataset{
		Name:    "Evening News",
		Program: models.Program{Name: "Radio 2"},
	})

	assert.True(t, strings.HasPrefix(md, "# Radio 2 / Evening News\n"))
	assert.Contains(t, md, "No records yet")
	assert.NotContains(t, md, "|")
}
