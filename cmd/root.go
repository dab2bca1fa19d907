// Package cmd wires the tally command tree
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/dataset"
	"github.com/thenoetrevino/tally/internal/cli/record"
	"github.com/thenoetrevino/tally/internal/launcher"
	"github.com/thenoetrevino/tally/internal/types"
)

var rootCmd = NewRootCmd()

// NewRootCmd builds the command tree. Without a subcommand it opens the
// interactive view of the dataset given by --dataset or TALLY_DATASET.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Tally - survey record entry for broadcast programs",
		Long: `Tally enters and reviews demographic counts of a broadcast program's
survey dataset against a GraphQL backend.

Run without a subcommand to open the interactive view of a dataset.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := cmd.Flags().GetString("dataset")
			if id == "" {
				id = os.Getenv("TALLY_DATASET")
			}
			if id == "" {
				return cli.Usagef("pass --dataset or set TALLY_DATASET")
			}
			return launcher.Launch(types.DatasetID(id))
		},
	}

	cmd.Flags().String("dataset", "", "Dataset ID to open (default $TALLY_DATASET)")

	cmd.AddCommand(dataset.DatasetCmd())
	cmd.AddCommand(record.RecordCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
