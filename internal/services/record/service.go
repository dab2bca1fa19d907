package record

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/tally/internal/graphql"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// Service defines all record-related operations. Every write reloads the
// owning dataset before it reports success.
type Service interface {
	// Read operations
	GetDataset(ctx context.Context, id types.DatasetID) (*models.Dataset, error)

	// Write operations
	Submit(ctx context.Context, sub Submission) (*Result, error)
	CreateRecord(ctx context.Context, input models.CreateRecordInput) (*Result, error)
	UpdateRecord(ctx context.Context, input models.UpdateRecordInput) (*Result, error)
	DeleteRecord(ctx context.Context, datasetID types.DatasetID, id types.RecordID) (*Result, error)
}

// Result is the outcome of a successful write: what the backend returned and
// the dataset as reloaded afterwards
type Result struct {
	Op        string
	Record    *models.RecordSummary
	DeletedID types.RecordID
	Dataset   *models.Dataset
}

// client defines the backend operations the record service needs.
// This interface is private to the service layer.
type client interface {
	GetDataset(ctx context.Context, id types.DatasetID) (*models.Dataset, error)
	CreateRecord(ctx context.Context, input models.CreateRecordInput) (*models.RecordSummary, error)
	UpdateRecord(ctx context.Context, input models.UpdateRecordInput) (*models.RecordSummary, error)
	DeleteRecord(ctx context.Context, id types.RecordID) (types.RecordID, error)
}

// service implements Service with a private backend client
type service struct {
	client client
	logger *slog.Logger
}

// NewService creates a record service backed by the given client
func NewService(c client, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{client: c, logger: logger}
}

// compile-time check that the GraphQL client satisfies the service's needs
var _ client = (*graphql.Client)(nil)

// GetDataset loads a dataset with all of its records
func (s *service) GetDataset(ctx context.Context, id types.DatasetID) (*models.Dataset, error) {
	if !id.Valid() {
		return nil, ErrInvalidDatasetID
	}
	ds, err := s.client.GetDataset(ctx, id)
	if err != nil {
		s.logger.Error("Error loading dataset", "dataset_id", id, "error", err)
		return nil, &QueryError{DatasetID: id, Err: err}
	}
	return ds, nil
}

// Submit dispatches a form submission to the matching mutation.
// Pointer variants are accepted; a nil submission of either kind is ErrNilSubmission.
func (s *service) Submit(ctx context.Context, sub Submission) (*Result, error) {
	switch v := sub.(type) {
	case Create:
		return s.CreateRecord(ctx, v.Input)
	case Update:
		return s.UpdateRecord(ctx, v.Input)
	case *Create:
		if v == nil {
			return nil, ErrNilSubmission
		}
		return s.CreateRecord(ctx, v.Input)
	case *Update:
		if v == nil {
			return nil, ErrNilSubmission
		}
		return s.UpdateRecord(ctx, v.Input)
	default:
		return nil, ErrNilSubmission
	}
}

// CreateRecord adds a record and reloads its dataset
func (s *service) CreateRecord(ctx context.Context, input models.CreateRecordInput) (*Result, error) {
	if !input.DatasetID.Valid() {
		return nil, ErrInvalidDatasetID
	}
	if err := validateRecord(input.PublicationDate, input.Data); err != nil {
		return nil, err
	}

	summary, err := s.client.CreateRecord(ctx, input)
	if err != nil {
		s.logger.Error("Error creating record", "dataset_id", input.DatasetID, "error", err)
		return nil, &MutationError{Op: graphql.OpCreateRecord, Err: err}
	}
	s.logger.Info("record created", "dataset_id", input.DatasetID, "record_id", summary.ID)

	return s.refresh(ctx, input.DatasetID, &Result{Op: graphql.OpCreateRecord, Record: summary})
}

// UpdateRecord replaces a record's date and counts and reloads its dataset
func (s *service) UpdateRecord(ctx context.Context, input models.UpdateRecordInput) (*Result, error) {
	if !input.ID.Valid() {
		return nil, ErrInvalidRecordID
	}
	if !input.DatasetID.Valid() {
		return nil, ErrInvalidDatasetID
	}
	if err := validateRecord(input.PublicationDate, input.Data); err != nil {
		return nil, err
	}

	summary, err := s.client.UpdateRecord(ctx, input)
	if err != nil {
		s.logger.Error("Error updating record", "record_id", input.ID, "error", err)
		return nil, &MutationError{Op: graphql.OpUpdateRecord, Err: err}
	}
	s.logger.Info("record updated", "dataset_id", input.DatasetID, "record_id", summary.ID)

	return s.refresh(ctx, input.DatasetID, &Result{Op: graphql.OpUpdateRecord, Record: summary})
}

// DeleteRecord removes a record and reloads its dataset.
// Repeated deletes are not deduplicated; whatever the backend answers is surfaced.
func (s *service) DeleteRecord(ctx context.Context, datasetID types.DatasetID, id types.RecordID) (*Result, error) {
	if !id.Valid() {
		return nil, ErrInvalidRecordID
	}
	if !datasetID.Valid() {
		return nil, ErrInvalidDatasetID
	}

	deleted, err := s.client.DeleteRecord(ctx, id)
	if err != nil {
		s.logger.Error("Error deleting record", "record_id", id, "error", err)
		return nil, &MutationError{Op: graphql.OpDeleteRecord, Err: err}
	}
	s.logger.Info("record deleted", "dataset_id", datasetID, "record_id", deleted)

	return s.refresh(ctx, datasetID, &Result{Op: graphql.OpDeleteRecord, DeletedID: deleted})
}

// refresh reloads the dataset after a successful write. The write is only
// reported as successful once the reload has completed.
func (s *service) refresh(ctx context.Context, datasetID types.DatasetID, result *Result) (*Result, error) {
	ds, err := s.client.GetDataset(ctx, datasetID)
	if err != nil {
		s.logger.Error("Error refreshing dataset", "dataset_id", datasetID, "op", result.Op, "error", err)
		return nil, &RefreshError{Op: result.Op, DatasetID: datasetID, Result: result, Err: err}
	}
	result.Dataset = ds
	return result, nil
}

func validateRecord(date string, data []models.EntryInput) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if len(data) == 0 {
		return ErrNoEntries
	}
	for _, e := range data {
		if strings.TrimSpace(e.Category) == "" || strings.TrimSpace(e.CategoryValue) == "" {
			return ErrEmptyCategory
		}
		if e.Count < 0 {
			return fmt.Errorf("%w: %s/%s", ErrNegativeCount, e.Category, e.CategoryValue)
		}
	}
	return nil
}
