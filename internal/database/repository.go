package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// DataStore defines the unified interface for all data operations needed by
// the GraphQL resolvers.
type DataStore interface {
	// Datasets
	CreateDataset(ctx context.Context, id types.DatasetID, programName, name string) (*models.Dataset, error)
	GetDataset(ctx context.Context, id types.DatasetID) (*models.Dataset, error)
	ListDatasets(ctx context.Context) ([]models.Dataset, error)
	DatasetIDForRecord(ctx context.Context, id types.RecordID) (types.DatasetID, error)

	// Records
	CreateRecord(ctx context.Context, input models.CreateRecordInput) (*models.RecordSummary, error)
	UpdateRecord(ctx context.Context, input models.UpdateRecordInput) (*models.RecordSummary, error)
	DeleteRecord(ctx context.Context, id types.RecordID) (types.RecordID, error)
	GetRecordSummary(ctx context.Context, id types.RecordID) (*models.RecordSummary, error)
}

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*DatasetRepo
	*RecordRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DatasetRepo: &DatasetRepo{db: db},
		RecordRepo:  &RecordRepo{db: db},
	}
}

var _ DataStore = (*Repository)(nil)
