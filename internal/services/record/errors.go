package record

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tally/internal/types"
)

// Validation errors for record operations
var (
	ErrInvalidDatasetID = errors.New("invalid dataset ID")
	ErrInvalidRecordID  = errors.New("invalid record ID")
	ErrInvalidDate      = errors.New("publication date must be YYYY-MM-DD")
	ErrNoEntries        = errors.New("record must have at least one entry")
	ErrNegativeCount    = errors.New("count cannot be negative")
	ErrEmptyCategory    = errors.New("entry category and value cannot be empty")
	ErrNilSubmission    = errors.New("no submission to send")
)

// QueryError reports that fetching a dataset failed. Views treat it as blocking.
type QueryError struct {
	DatasetID types.DatasetID
	Err       error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("failed to load dataset %s: %v", e.DatasetID, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// MutationError reports that a create, update or delete was rejected.
// No refresh was attempted.
type MutationError struct {
	Op  string
	Err error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

// RefreshError reports that a mutation succeeded but reloading its dataset
// failed. Result holds what the mutation returned; the write is not undone.
type RefreshError struct {
	Op        string
	DatasetID types.DatasetID
	Result    *Result
	Err       error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("%s succeeded but reloading dataset %s failed: %v", e.Op, e.DatasetID, e.Err)
}

func (e *RefreshError) Unwrap() error { return e.Err }
