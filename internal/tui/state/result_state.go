package state

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a result transition is not allowed
// from the current status
var ErrInvalidTransition = errors.New("invalid result state transition")

// Status is the lifecycle of one form submission
type Status int

const (
	StatusIdle    Status = iota // Nothing submitted yet
	StatusPending               // Mutation (and refresh) in flight
	StatusSuccess               // Mutation and refresh both completed
	StatusFailure               // Mutation or refresh failed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ResultState tracks a form's submission outcome.
//
// Allowed transitions:
//   - Idle -> Pending (Begin)
//   - Pending -> Success (Succeed)
//   - Pending -> Failure (Fail)
//   - Failure -> Pending (Begin, retry with the same edits)
//   - Success -> Idle (AddAnother)
//
// Everything else returns ErrInvalidTransition and leaves the state unchanged.
type ResultState struct {
	status           Status
	err              error
	continueEntering bool
}

// NewResultState creates a ResultState in Idle. Forms create one on mount.
func NewResultState() *ResultState {
	return &ResultState{status: StatusIdle}
}

// Status returns the current status.
func (s *ResultState) Status() Status {
	return s.status
}

// Err returns the failure cause, nil unless the status is Failure.
func (s *ResultState) Err() error {
	return s.err
}

// ContinueEntering reports whether the user chose to add another record.
// It is cleared by the next Begin.
func (s *ResultState) ContinueEntering() bool {
	return s.continueEntering
}

// Begin marks a submission in flight.
func (s *ResultState) Begin() error {
	if s.status != StatusIdle && s.status != StatusFailure {
		return s.invalid("begin")
	}
	s.status = StatusPending
	s.err = nil
	s.continueEntering = false
	return nil
}

// Succeed marks the submission and its refresh complete.
func (s *ResultState) Succeed() error {
	if s.status != StatusPending {
		return s.invalid("succeed")
	}
	s.status = StatusSuccess
	return nil
}

// Fail records the error of a failed submission. The error is kept as-is.
func (s *ResultState) Fail(err error) error {
	if s.status != StatusPending {
		return s.invalid("fail")
	}
	s.status = StatusFailure
	s.err = err
	return nil
}

// AddAnother leaves Success for a fresh entry in the same view.
func (s *ResultState) AddAnother() error {
	if s.status != StatusSuccess {
		return s.invalid("add another")
	}
	s.status = StatusIdle
	s.err = nil
	s.continueEntering = true
	return nil
}

func (s *ResultState) invalid(action string) error {
	return fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, action, s.status)
}
