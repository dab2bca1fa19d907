package graphql

import (
	"errors"
	"fmt"
	"strings"

	hgql "github.com/hasura/go-graphql-client"
)

// ErrNotFound indicates the backend resolved a lookup to null
var ErrNotFound = errors.New("not found")

// ErrorItem is one entry of a GraphQL response's errors list
type ErrorItem struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Error is returned when the backend answers with a non-empty errors list
type Error struct {
	Operation string
	Errors    []ErrorItem
}

// Error implements the error interface.
func (e *Error) Error() string {
	messages := make([]string, len(e.Errors))
	for i, item := range e.Errors {
		messages[i] = item.Message
	}
	return fmt.Sprintf("%s: %s", e.Operation, strings.Join(messages, "; "))
}

// HTTPError is returned when the transport answers with a non-2xx status
type HTTPError struct {
	Operation  string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: unexpected HTTP status %d", e.Operation, e.StatusCode)
}

// HasMessage reports whether any error message contains substr
func (e *Error) HasMessage(substr string) bool {
	for _, item := range e.Errors {
		if strings.Contains(item.Message, substr) {
			return true
		}
	}
	return false
}

// clientErrorCodes are the extension codes the GraphQL library uses for
// failures on this side of the wire
var clientErrorCodes = map[string]bool{
	"request_error":        true,
	"json_encode_error":    true,
	"json_decode_error":    true,
	"graphql_encode_error": true,
	"graphql_decode_error": true,
}

// serverErrors extracts the errors the backend itself reported. It returns
// nil when err carries none.
func serverErrors(err error) []ErrorItem {
	var list hgql.Errors
	if !errors.As(err, &list) {
		return nil
	}
	var items []ErrorItem
	for _, e := range list {
		if code, _ := e.Extensions["code"].(string); clientErrorCodes[code] {
			continue
		}
		items = append(items, ErrorItem{
			Message:    e.Message,
			Path:       e.Path,
			Extensions: e.Extensions,
		})
	}
	return items
}
