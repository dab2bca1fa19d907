package record

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// CreateCmd returns the record create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a record to a dataset",
		Long: `Add a record to a dataset.

Examples:
  tally record create --dataset <id> --entry gender:men=3 --entry gender:women=4
  tally record create --dataset <id> --date 2024-03-01 --entry gender:women=5 --quiet`,
		RunE: runCreate,
	}

	cmd.Flags().String("dataset", "", "Dataset ID (required)")
	if err := cmd.MarkFlagRequired("dataset"); err != nil {
		slog.Error("error marking flag as required", "error", err)
	}
	cmd.Flags().String("date", "", "Publication date, YYYY-MM-DD (default today)")
	cmd.Flags().StringArray("entry", nil, "Count as category:value=count (repeatable, required)")
	if err := cmd.MarkFlagRequired("entry"); err != nil {
		slog.Error("error marking flag as required", "error", err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	datasetID, _ := cmd.Flags().GetString("dataset")
	date, _ := cmd.Flags().GetString("date")
	rawEntries, _ := cmd.Flags().GetStringArray("entry")
	formatter := cli.Formatter(cmd)

	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}
	entries, err := cli.ParseEntries(rawEntries)
	if err != nil {
		return cli.Fail(formatter, "INVALID_ENTRY", err)
	}

	cliInstance, err := cli.Setup(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	res, err := cliInstance.App.RecordService.CreateRecord(cliInstance.Context(), models.CreateRecordInput{
		DatasetID:       types.DatasetID(datasetID),
		PublicationDate: date,
		Data:            entries,
	})
	if err != nil {
		return cli.Fail(formatter, "CREATE_ERROR", err)
	}

	out := newRecordOutput(res)
	message := fmt.Sprintf("✓ Record %s created for %s (%s)", out.ID, date, summarize(entries))
	return formatter.Success(message, out)
}
