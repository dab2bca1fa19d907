package state

import (
	"errors"
	"testing"
)

func TestResultState_HappyPath(t *testing.T) {
	s := NewResultState()
	if s.Status() != StatusIdle {
		t.Fatalf("initial Status() = %v, want idle", s.Status())
	}

	if err := s.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if err := s.Succeed(); err != nil {
		t.Fatalf("Succeed() error = %v", err)
	}
	if s.Status() != StatusSuccess {
		t.Errorf("Status() = %v, want success", s.Status())
	}

	if err := s.AddAnother(); err != nil {
		t.Fatalf("AddAnother() error = %v", err)
	}
	if s.Status() != StatusIdle || !s.ContinueEntering() {
		t.Errorf("after AddAnother: status = %v, continue = %v; want idle, true", s.Status(), s.ContinueEntering())
	}
}

// TestResultState_FailureKeepsRawError ensures the error is surfaced unmodified and retry is allowed.
func TestResultState_FailureKeepsRawError(t *testing.T) {
	cause := errors.New("backend said no")
	s := NewResultState()
	_ = s.Begin()

	if err := s.Fail(cause); err != nil {
		t.Fatalf("Fail() error = %v", err)
	}
	if s.Err() != cause {
		t.Errorf("Err() = %v, want the exact cause", s.Err())
	}

	if err := s.Begin(); err != nil {
		t.Fatalf("retry Begin() error = %v", err)
	}
	if s.Err() != nil {
		t.Errorf("Err() after retry = %v, want nil", s.Err())
	}
}

func TestResultState_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*ResultState)
		act   func(*ResultState) error
		want  Status
	}{
		{"succeed from idle", func(*ResultState) {}, (*ResultState).Succeed, StatusIdle},
		{"fail from idle", func(*ResultState) {}, func(s *ResultState) error { return s.Fail(errors.New("x")) }, StatusIdle},
		{"add another from idle", func(*ResultState) {}, (*ResultState).AddAnother, StatusIdle},
		{"begin while pending", func(s *ResultState) { _ = s.Begin() }, (*ResultState).Begin, StatusPending},
		{"begin from success", func(s *ResultState) { _ = s.Begin(); _ = s.Succeed() }, (*ResultState).Begin, StatusSuccess},
		{"add another from failure", func(s *ResultState) { _ = s.Begin(); _ = s.Fail(errors.New("x")) }, (*ResultState).AddAnother, StatusFailure},
		{"succeed twice", func(s *ResultState) { _ = s.Begin(); _ = s.Succeed() }, (*ResultState).Succeed, StatusSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewResultState()
			tt.setup(s)

			if err := tt.act(s); !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("error = %v, want ErrInvalidTransition", err)
			}
			if s.Status() != tt.want {
				t.Errorf("Status() = %v, want %v (unchanged)", s.Status(), tt.want)
			}
		})
	}
}
