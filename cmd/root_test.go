package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/testutil"
)

func TestRootRequiresDataset(t *testing.T) {
	t.Setenv("TALLY_DATASET", "")

	_, _, err := testutil.ExecuteCommand(t, NewRootCmd())
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}

func TestRootRegistersSubcommands(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"dataset", "show"},
		{"record", "create"},
		{"record", "update"},
		{"record", "delete"},
	} {
		found, _, err := root.Find(path)
		require.NoError(t, err, "%v", path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}
