package record

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/types"
)

// DeleteCmd returns the record delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a record",
		Long:  "Delete a record from a dataset. Asks for confirmation unless --force or --quiet is given.",
		RunE:  runDelete,
	}

	cmd.Flags().String("dataset", "", "Dataset ID (required)")
	if err := cmd.MarkFlagRequired("dataset"); err != nil {
		slog.Error("error marking flag as required", "error", err)
	}
	cmd.Flags().String("id", "", "Record ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("error marking flag as required", "error", err)
	}
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	datasetID, _ := cmd.Flags().GetString("dataset")
	recordID, _ := cmd.Flags().GetString("id")
	force, _ := cmd.Flags().GetBool("force")
	formatter := cli.Formatter(cmd)

	// Ask for confirmation unless force or quiet mode
	if !force && !formatter.Quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete record %s? (y/N): ", recordID)
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	cliInstance, err := cli.Setup(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	res, err := cliInstance.App.RecordService.DeleteRecord(cliInstance.Context(),
		types.DatasetID(datasetID), types.RecordID(recordID))
	if err != nil {
		return cli.Fail(formatter, "DELETE_ERROR", err)
	}

	out := newRecordOutput(res)
	message := fmt.Sprintf("✓ Record %s deleted (%d record(s) left)", out.ID, out.Records)
	return formatter.Success(message, out)
}
