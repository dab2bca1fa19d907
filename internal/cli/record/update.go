package record

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/converters"
	"github.com/thenoetrevino/tally/internal/graphql"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// UpdateCmd returns the record update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change a record's date or counts",
		Long: `Change a record's publication date or counts.

Only the counts given with --entry change; every other count keeps its
current value. Category pairs cannot be added or removed.

Examples:
  tally record update --dataset <id> --id <record> --entry gender:women=6
  tally record update --dataset <id> --id <record> --date 2024-03-08`,
		RunE: runUpdate,
	}

	cmd.Flags().String("dataset", "", "Dataset ID (required)")
	if err := cmd.MarkFlagRequired("dataset"); err != nil {
		slog.Error("error marking flag as required", "error", err)
	}
	cmd.Flags().String("id", "", "Record ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("error marking flag as required", "error", err)
	}
	cmd.Flags().String("date", "", "New publication date, YYYY-MM-DD")
	cmd.Flags().StringArray("entry", nil, "New count as category:value=count (repeatable)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	datasetID, _ := cmd.Flags().GetString("dataset")
	recordID, _ := cmd.Flags().GetString("id")
	date, _ := cmd.Flags().GetString("date")
	rawEntries, _ := cmd.Flags().GetStringArray("entry")
	formatter := cli.Formatter(cmd)

	if date == "" && len(rawEntries) == 0 {
		return cli.Fail(formatter, "NO_CHANGES", cli.Usagef("nothing to update: pass --date or --entry"))
	}
	changes, err := cli.ParseEntries(rawEntries)
	if err != nil {
		return cli.Fail(formatter, "INVALID_ENTRY", err)
	}

	cliInstance, err := cli.Setup(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	svc := cliInstance.App.RecordService
	ds, err := svc.GetDataset(cliInstance.Context(), types.DatasetID(datasetID))
	if err != nil {
		return cli.Fail(formatter, "DATASET_NOT_FOUND", err)
	}
	current := ds.FindRecord(types.RecordID(recordID))
	if current == nil {
		return cli.Fail(formatter, "RECORD_NOT_FOUND",
			fmt.Errorf("record %s in dataset %s: %w", recordID, datasetID, graphql.ErrNotFound))
	}

	if date == "" {
		date = current.PublicationDate
	}
	data, err := applyChanges(converters.ToEntryInputs(current.Entries), changes)
	if err != nil {
		return cli.Fail(formatter, "INVALID_ENTRY", err)
	}

	res, err := svc.UpdateRecord(cliInstance.Context(), models.UpdateRecordInput{
		ID:              current.ID,
		DatasetID:       ds.ID,
		PublicationDate: date,
		Data:            data,
	})
	if err != nil {
		return cli.Fail(formatter, "UPDATE_ERROR", err)
	}

	out := newRecordOutput(res)
	message := fmt.Sprintf("✓ Record %s updated (%s, %s)", out.ID, date, summarize(data))
	return formatter.Success(message, out)
}

// applyChanges overwrites the counts of the given pairs. A pair the record
// does not already have is a usage error.
func applyChanges(current, changes []models.EntryInput) ([]models.EntryInput, error) {
	out := make([]models.EntryInput, len(current))
	copy(out, current)

	for _, c := range changes {
		found := false
		for i := range out {
			if out[i].Category == c.Category && out[i].CategoryValue == c.CategoryValue {
				out[i].Count = c.Count
				found = true
				break
			}
		}
		if !found {
			return nil, cli.Usagef("record has no %s:%s count", c.Category, c.CategoryValue)
		}
	}
	return out, nil
}
