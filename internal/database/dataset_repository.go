package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// DatasetRepo handles pure data access for programs and datasets
type DatasetRepo struct {
	db *sql.DB
}

// CreateDataset inserts a dataset under the named program, creating the
// program on first use. An empty id generates a fresh one.
func (r *DatasetRepo) CreateDataset(ctx context.Context, id types.DatasetID, programName, name string) (*models.Dataset, error) {
	if id == "" {
		id = types.NewDatasetID()
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		programID, err := upsertProgram(ctx, tx, programName)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO datasets (id, name, program_id) VALUES (?, ?, ?)`,
			string(id), name, programID,
		)
		if err != nil {
			return fmt.Errorf("failed to create dataset: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.Dataset{
		ID:      id,
		Name:    name,
		Program: models.Program{Name: programName},
		Records: []models.Record{},
	}, nil
}

func upsertProgram(ctx context.Context, tx *sql.Tx, name string) (string, error) {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM programs WHERE name = ?`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("failed to look up program %q: %w", name, err)
	}

	id = uuid.NewString()
	if _, err := tx.ExecContext(ctx, `INSERT INTO programs (id, name) VALUES (?, ?)`, id, name); err != nil {
		return "", fmt.Errorf("failed to create program %q: %w", name, err)
	}
	return id, nil
}

// GetDataset retrieves a dataset with its program, records and entries.
// Records come back in insertion order, entries in their stored position.
func (r *DatasetRepo) GetDataset(ctx context.Context, id types.DatasetID) (*models.Dataset, error) {
	ds := &models.Dataset{ID: id, Records: []models.Record{}}
	err := r.db.QueryRowContext(ctx, `
		SELECT d.name, p.name
		FROM datasets d
		JOIN programs p ON p.id = d.program_id
		WHERE d.id = ?`, string(id),
	).Scan(&ds.Name, &ds.Program.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("dataset %s: %w", id, ErrDatasetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset %s: %w", id, err)
	}

	records, err := r.recordsForDataset(ctx, id)
	if err != nil {
		return nil, err
	}
	ds.Records = records
	return ds, nil
}

func (r *DatasetRepo) recordsForDataset(ctx context.Context, id types.DatasetID) ([]models.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.publication_date, e.id, e.category, e.category_value, e.count
		FROM records r
		LEFT JOIN entries e ON e.record_id = r.id
		WHERE r.dataset_id = ?
		ORDER BY r.rowid, e.position`, string(id),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get records for dataset %s: %w", id, err)
	}
	defer func() { _ = rows.Close() }()

	records := []models.Record{}
	index := make(map[types.RecordID]int)
	for rows.Next() {
		var (
			recordID types.RecordID
			date     string
			entryID  sql.NullString
			category sql.NullString
			value    sql.NullString
			count    sql.NullInt64
		)
		if err := rows.Scan(&recordID, &date, &entryID, &category, &value, &count); err != nil {
			return nil, err
		}

		i, ok := index[recordID]
		if !ok {
			i = len(records)
			index[recordID] = i
			records = append(records, models.Record{
				ID:              recordID,
				PublicationDate: date,
				Entries:         []models.CategoryEntry{},
			})
		}
		if !entryID.Valid {
			continue
		}
		records[i].Entries = append(records[i].Entries, models.CategoryEntry{
			ID:            types.EntryID(entryID.String),
			Category:      category.String,
			CategoryValue: value.String,
			Count:         int(count.Int64),
		})
	}

	return records, rows.Err()
}

// ListDatasets returns every dataset without its records, ordered by name
func (r *DatasetRepo) ListDatasets(ctx context.Context) ([]models.Dataset, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.id, d.name, p.name
		FROM datasets d
		JOIN programs p ON p.id = d.program_id
		ORDER BY d.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	datasets := []models.Dataset{}
	for rows.Next() {
		var ds models.Dataset
		if err := rows.Scan(&ds.ID, &ds.Name, &ds.Program.Name); err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}
	return datasets, rows.Err()
}

// DatasetIDForRecord returns the id of the dataset owning a record
func (r *DatasetRepo) DatasetIDForRecord(ctx context.Context, id types.RecordID) (types.DatasetID, error) {
	var datasetID types.DatasetID
	err := r.db.QueryRowContext(ctx, `SELECT dataset_id FROM records WHERE id = ?`, string(id)).Scan(&datasetID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("record %s: %w", id, ErrRecordNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get dataset for record %s: %w", id, err)
	}
	return datasetID, nil
}
