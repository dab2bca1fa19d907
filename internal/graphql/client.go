// Package graphql is the typed client for the survey backend. Operations are
// declared as tagged Go structs and executed by hasura/go-graphql-client; this
// package maps the library's results onto the domain models and errors.
package graphql

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	hgql "github.com/hasura/go-graphql-client"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// maxErrorBody caps how much of a failed response body is kept for HTTPError
const maxErrorBody = 4096

// Client executes operations against a single GraphQL endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
	header     http.Header
	logger     *slog.Logger
	gql        *hgql.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sends a bearer token on every request
func WithToken(token string) Option {
	return func(c *Client) {
		if token != "" {
			c.header.Set("Authorization", "Bearer "+token)
		}
	}
}

// WithHeader adds a static header to every request
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.header.Add(key, value)
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the given endpoint URL
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		header:     make(http.Header),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.gql = hgql.NewClient(endpoint, &exchangeRecorder{next: c.httpClient}).
		WithRequestModifier(func(r *http.Request) {
			for key, values := range c.header {
				for _, v := range values {
					r.Header.Add(key, v)
				}
			}
		})
	return c
}

// run executes one operation, translating whatever the library reports into
// *Error, *HTTPError or a wrapped transport error
func (c *Client) run(ctx context.Context, op string, mutation bool, out any, variables map[string]any) error {
	ex := &exchange{}
	ctx = context.WithValue(ctx, exchangeKey{}, ex)

	start := time.Now()
	var err error
	if mutation {
		err = c.gql.Mutate(ctx, out, variables, hgql.OperationName(op))
	} else {
		err = c.gql.Query(ctx, out, variables, hgql.OperationName(op))
	}

	c.logger.Debug("graphql request",
		"operation", op,
		"status", ex.status,
		"duration", time.Since(start),
	)

	if err == nil {
		return nil
	}
	return c.translate(ctx, op, ex, err)
}

func (c *Client) translate(ctx context.Context, op string, ex *exchange, err error) error {
	switch {
	case ex.err != nil:
		c.logger.Error("graphql request failed", "operation", op, "error", ex.err)
		return fmt.Errorf("%s: request failed: %w", op, ex.err)
	case ctx.Err() != nil:
		return fmt.Errorf("%s: request failed: %w", op, ctx.Err())
	case ex.status != 0 && (ex.status < 200 || ex.status > 299):
		return &HTTPError{Operation: op, StatusCode: ex.status, Body: ex.body}
	}

	if items := serverErrors(err); len(items) > 0 {
		return &Error{Operation: op, Errors: items}
	}
	return fmt.Errorf("%s: failed to decode response: %w", op, err)
}

// GetDataset fetches a dataset with all of its records and entries.
// A null dataset is reported as ErrNotFound.
func (c *Client) GetDataset(ctx context.Context, id types.DatasetID) (*models.Dataset, error) {
	var q getDatasetQuery
	if err := c.run(ctx, OpGetDataset, false, &q, map[string]any{
		"id": hgql.ID(id.String()),
	}); err != nil {
		return nil, err
	}
	if q.Dataset == nil {
		return nil, fmt.Errorf("dataset %s: %w", id, ErrNotFound)
	}
	return q.Dataset.toModel(), nil
}

// CreateRecord adds a record to a dataset
func (c *Client) CreateRecord(ctx context.Context, input models.CreateRecordInput) (*models.RecordSummary, error) {
	var m createRecordMutation
	if err := c.run(ctx, OpCreateRecord, true, &m, map[string]any{"input": input}); err != nil {
		return nil, err
	}
	if m.CreateRecord == nil {
		return nil, fmt.Errorf("%s: empty result", OpCreateRecord)
	}
	return m.CreateRecord.toModel(), nil
}

// UpdateRecord replaces a record's publication date and counts
func (c *Client) UpdateRecord(ctx context.Context, input models.UpdateRecordInput) (*models.RecordSummary, error) {
	var m updateRecordMutation
	if err := c.run(ctx, OpUpdateRecord, true, &m, map[string]any{"input": input}); err != nil {
		return nil, err
	}
	if m.UpdateRecord == nil {
		return nil, fmt.Errorf("%s: empty result", OpUpdateRecord)
	}
	return m.UpdateRecord.toModel(), nil
}

// DeleteRecord removes a record and returns the id the backend deleted
func (c *Client) DeleteRecord(ctx context.Context, id types.RecordID) (types.RecordID, error) {
	var m deleteRecordMutation
	if err := c.run(ctx, OpDeleteRecord, true, &m, map[string]any{
		"id": hgql.ID(id.String()),
	}); err != nil {
		return "", err
	}
	if m.DeleteRecord == nil {
		return "", fmt.Errorf("%s: empty result", OpDeleteRecord)
	}
	return m.DeleteRecord.ID, nil
}

// exchange is what the transport saw for one operation
type exchange struct {
	status int
	body   string
	err    error
}

type exchangeKey struct{}

// exchangeRecorder sits between the GraphQL library and the http.Client and
// notes the status, the head of a failed body and any transport error
type exchangeRecorder struct {
	next *http.Client
}

func (r *exchangeRecorder) Do(req *http.Request) (*http.Response, error) {
	ex, _ := req.Context().Value(exchangeKey{}).(*exchange)

	resp, err := r.next.Do(req)
	if ex == nil {
		return resp, err
	}
	if err != nil {
		ex.err = err
		return nil, err
	}

	ex.status = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			ex.err = readErr
			return nil, readErr
		}
		if len(raw) > maxErrorBody {
			ex.body = string(raw[:maxErrorBody])
		} else {
			ex.body = string(raw)
		}
		resp.Body = io.NopCloser(bytes.NewReader(raw))
	}
	return resp, nil
}
