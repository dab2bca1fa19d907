package dataset

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/converters"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// ShowCmd returns the dataset show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a dataset and its records",
		Long:  "Show a dataset's records as a table, one column per category value.",
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Dataset ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("error marking flag as required", "error", err)
	}
	cmd.Flags().Bool("raw", false, "Print the markdown without styling")
	cli.AddOutputFlags(cmd)

	return cmd
}

// showOutput is the JSON shape of a dataset
type showOutput struct {
	*models.Dataset
}

func (s showOutput) GetID() string { return s.ID.String() }

func runShow(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	raw, _ := cmd.Flags().GetBool("raw")
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.Setup(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	ds, err := cliInstance.App.RecordService.GetDataset(cliInstance.Context(), types.DatasetID(id))
	if err != nil {
		return cli.Fail(formatter, "DATASET_NOT_FOUND", err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success("", showOutput{ds})
	}

	md := RenderMarkdown(ds)
	if !raw {
		styled, err := renderStyled(md)
		if err != nil {
			slog.Warn("markdown rendering failed, printing raw", "error", err)
		} else {
			md = styled
		}
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), md)
	return err
}

// RenderMarkdown lays a dataset out as a markdown table: record id, date,
// then one count column per category value
func RenderMarkdown(ds *models.Dataset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s / %s\n\n", ds.Program.Name, ds.Name)

	if len(ds.Records) == 0 {
		b.WriteString("_No records yet._\n")
		return b.String()
	}

	columns := converters.TableColumns(ds.Records)
	header := append([]string{"ID", "Date"}, columns...)
	align := make([]string, len(header))
	align[0], align[1] = "---", "---"
	for i := 2; i < len(align); i++ {
		align[i] = "---:"
	}
	writeRow(&b, header)
	writeRow(&b, align)

	for _, row := range converters.ToTableRows(ds.Records) {
		cells := []string{row.ID.String(), row.PublicationDate}
		for _, c := range columns {
			cells = append(cells, strconv.Itoa(row.Counts[c]))
		}
		writeRow(&b, cells)
	}

	fmt.Fprintf(&b, "\n%d record(s)\n", len(ds.Records))
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

func renderStyled(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
