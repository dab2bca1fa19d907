// Package record implements the record write commands: create, update and
// delete. Each write reloads its dataset before reporting success.
package record

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/models"
	recordsvc "github.com/thenoetrevino/tally/internal/services/record"
)

// RecordCmd returns the record parent command
func RecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Create, update and delete records",
		Long: `Write records of a dataset without opening the interactive view.

Counts are given as repeatable --entry flags of the form category:value=count,
for example --entry gender:women=5 --entry gender:men=3.`,
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// recordOutput is the JSON shape of a finished write
type recordOutput struct {
	ID              string                 `json:"id"`
	PublicationDate string                 `json:"publicationDate,omitempty"`
	Dataset         string                 `json:"dataset,omitempty"`
	Entries         []models.CategoryEntry `json:"entries,omitempty"`
	Records         int                    `json:"records"`
}

func (r recordOutput) GetID() string { return r.ID }

func newRecordOutput(res *recordsvc.Result) recordOutput {
	out := recordOutput{ID: res.DeletedID.String()}
	if res.Record != nil {
		out.ID = res.Record.ID.String()
		out.PublicationDate = res.Record.PublicationDate
		out.Dataset = res.Record.Dataset.Name
		out.Entries = res.Record.Entries
	}
	if res.Dataset != nil {
		out.Records = len(res.Dataset.Records)
	}
	return out
}

// summarize describes entries as "gender: men 3, women 4"
func summarize(entries []models.EntryInput) string {
	var parts []string
	var last string
	for _, e := range entries {
		if e.Category != last {
			parts = append(parts, fmt.Sprintf("%s: %s %d", e.Category, e.CategoryValue, e.Count))
			last = e.Category
			continue
		}
		parts[len(parts)-1] += fmt.Sprintf(", %s %d", e.CategoryValue, e.Count)
	}
	return strings.Join(parts, "; ")
}
