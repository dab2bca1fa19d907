package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddOutputFlags registers the --json and --quiet flags every command shares
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// Formatter builds the OutputFormatter selected by a command's flags,
// writing to the command's own streams
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// Setup initializes the CLI for a command; the caller must Close it.
// Initialization failures are reported through the formatter.
func Setup(cmd *cobra.Command, formatter *OutputFormatter) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cliInstance, err := NewCLI(ctx)
	if err != nil {
		return nil, Fail(formatter, "INITIALIZATION_ERROR", err)
	}

	slog.Debug("running command", "command", cmd.CommandPath(), "flags", setFlags(cmd))
	return cliInstance, nil
}

// setFlags lists the flags that were explicitly set, as name=value
func setFlags(cmd *cobra.Command) []string {
	var set []string
	cmd.Flags().Visit(func(f *pflag.Flag) {
		set = append(set, f.Name+"="+f.Value.String())
	})
	return set
}

// Fail reports err through the formatter and returns it carrying its exit code
func Fail(formatter *OutputFormatter, code string, err error) error {
	if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
		slog.Error("error formatting error message", "error", fmtErr)
	}
	return Exit(err)
}

// CloseQuietly closes c, logging any error
func CloseQuietly(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("error closing CLI", "error", err)
	}
}
