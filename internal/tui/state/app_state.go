package state

import (
	"github.com/thenoetrevino/tally/internal/converters"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// AppState manages the application's domain data.
// This is the dataset loaded from the backend and the table rows derived
// from it. It is replaced wholesale after every successful refresh.
type AppState struct {
	// dataset is the last dataset received from the backend, nil before the first load
	dataset *models.Dataset

	// rows caches the table projection of dataset.Records
	rows []models.TableRow

	// columns caches the distinct category values used as table headers
	columns []string
}

// NewAppState creates a new AppState holding the given dataset.
// A nil dataset is allowed and means nothing has loaded yet.
func NewAppState(dataset *models.Dataset) *AppState {
	s := &AppState{}
	s.SetDataset(dataset)
	return s
}

// Dataset returns the current dataset, or nil before the first load.
func (s *AppState) Dataset() *models.Dataset {
	return s.dataset
}

// DatasetID returns the id of the loaded dataset.
// Returns "" if nothing is loaded.
func (s *AppState) DatasetID() types.DatasetID {
	if s.dataset == nil {
		return ""
	}
	return s.dataset.ID
}

// SetDataset replaces the dataset and recomputes the table projection.
// This should be called with the result of every refresh.
func (s *AppState) SetDataset(dataset *models.Dataset) {
	s.dataset = dataset
	if dataset == nil {
		s.rows = []models.TableRow{}
		s.columns = []string{}
		return
	}
	s.rows = converters.ToTableRows(dataset.Records)
	s.columns = converters.TableColumns(dataset.Records)
}

// Records returns the dataset's records, or nil if nothing is loaded.
func (s *AppState) Records() []models.Record {
	if s.dataset == nil {
		return nil
	}
	return s.dataset.Records
}

// Rows returns the table rows in record order.
func (s *AppState) Rows() []models.TableRow {
	return s.rows
}

// Columns returns the category value columns of the table.
func (s *AppState) Columns() []string {
	return s.columns
}

// RecordAt returns the record shown at table row index.
// Returns nil if the index is out of range.
func (s *AppState) RecordAt(index int) *models.Record {
	records := s.Records()
	if index < 0 || index >= len(records) {
		return nil
	}
	return &records[index]
}
