package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidCount indicates a count field that is not a non-negative integer
	ErrInvalidCount = errors.New("count must be a whole number of zero or more")

	// ErrInvalidDate indicates a publication date not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("publication date must be YYYY-MM-DD")
)

// ParseCount parses a base-10 count of zero or more, ignoring surrounding space
func ParseCount(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, raw)
	}
	return n, nil
}

// ParseDate validates a YYYY-MM-DD date and returns it trimmed
func ParseDate(raw string) (string, error) {
	date := strings.TrimSpace(raw)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return date, nil
}
