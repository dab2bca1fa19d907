package state

import (
	"errors"

	"github.com/thenoetrevino/tally/internal/services/record"
)

// ErrorState manages error display state.
// A blocking error replaces the whole view (the dataset could not be loaded);
// any other error is shown inline and the current view stays usable.
type ErrorState struct {
	// err is the current error, nil when there is none
	err error
}

// NewErrorState creates a new ErrorState with no error.
func NewErrorState() *ErrorState {
	return &ErrorState{}
}

// Set records err for display. A nil err clears the state.
func (s *ErrorState) Set(err error) {
	s.err = err
}

// Clear removes any current error.
func (s *ErrorState) Clear() {
	s.err = nil
}

// HasError returns true if there is currently an error set.
func (s *ErrorState) HasError() bool {
	return s.err != nil
}

// Err returns the current error.
func (s *ErrorState) Err() error {
	return s.err
}

// Get returns the current error message.
// Returns an empty string if there is no error.
func (s *ErrorState) Get() string {
	if s.err == nil {
		return ""
	}
	return s.err.Error()
}

// Blocking reports whether the error prevents any view from rendering,
// which is the case only when the dataset query itself failed.
func (s *ErrorState) Blocking() bool {
	var qErr *record.QueryError
	return errors.As(s.err, &qErr)
}
