// Package dataset implements the read-only dataset commands
package dataset

import "github.com/spf13/cobra"

// DatasetCmd returns the dataset parent command
func DatasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Inspect datasets",
	}

	cmd.AddCommand(ShowCmd())

	return cmd
}
