package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tally/internal/graphql"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/services/record"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneral indicates a general error occurred.
	// Use for: network errors, backend failures, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitGeneral = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, malformed --entry values.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: unknown dataset or record ids.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a backend response that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: negative counts, bad dates, malformed ids.
	ExitValidation = 5
)

// ErrUsage marks an error caused by how the command was invoked
var ErrUsage = errors.New("usage error")

// ExitError carries the process exit code a command failed with
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// Exit wraps err with the exit code ExitCodeFor assigns it
func Exit(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: ExitCodeFor(err), Err: err}
}

// Usagef builds a usage error
func Usagef(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Err: fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))}
}

// ExitCodeFor maps an error from the service or transport layer to an exit code
func ExitCodeFor(err error) int {
	var exitErr *ExitError
	var gqlErr *graphql.Error
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, graphql.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, record.ErrInvalidDatasetID),
		errors.Is(err, record.ErrInvalidRecordID),
		errors.Is(err, record.ErrInvalidDate),
		errors.Is(err, record.ErrNegativeCount),
		errors.Is(err, record.ErrEmptyCategory),
		errors.Is(err, record.ErrNoEntries),
		errors.Is(err, models.ErrInvalidCount),
		errors.Is(err, models.ErrInvalidDate):
		return ExitValidation
	case errors.As(err, &gqlErr) && gqlErr.HasMessage("not found"):
		return ExitNotFound
	}
	return ExitGeneral
}
