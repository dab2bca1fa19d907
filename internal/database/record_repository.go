package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// RecordRepo handles pure data access for records and their entries.
// No validation beyond what the schema enforces.
type RecordRepo struct {
	db *sql.DB
}

// CreateRecord inserts a record and its entries into an existing dataset
func (r *RecordRepo) CreateRecord(ctx context.Context, input models.CreateRecordInput) (*models.RecordSummary, error) {
	id := types.NewRecordID()

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		ok, err := datasetExists(ctx, tx, string(input.DatasetID))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("dataset %s: %w", input.DatasetID, ErrDatasetNotFound)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO records (id, dataset_id, publication_date) VALUES (?, ?, ?)`,
			string(id), string(input.DatasetID), input.PublicationDate,
		)
		if err != nil {
			return fmt.Errorf("failed to create record: %w", err)
		}
		return upsertEntries(ctx, tx, id, input.Data)
	})
	if err != nil {
		return nil, err
	}

	return r.GetRecordSummary(ctx, id)
}

// UpdateRecord replaces a record's publication date and entries.
// Entries matching an existing category/value keep their id; entries absent
// from data are removed.
func (r *RecordRepo) UpdateRecord(ctx context.Context, input models.UpdateRecordInput) (*models.RecordSummary, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE records SET publication_date = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			input.PublicationDate, string(input.ID),
		)
		if err != nil {
			return fmt.Errorf("failed to update record %s: %w", input.ID, err)
		}
		if n, err := result.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return fmt.Errorf("record %s: %w", input.ID, ErrRecordNotFound)
		}

		if err := upsertEntries(ctx, tx, input.ID, input.Data); err != nil {
			return err
		}
		return pruneEntries(ctx, tx, input.ID, input.Data)
	})
	if err != nil {
		return nil, err
	}

	return r.GetRecordSummary(ctx, input.ID)
}

// DeleteRecord removes a record; its entries cascade
func (r *RecordRepo) DeleteRecord(ctx context.Context, id types.RecordID) (types.RecordID, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, string(id))
	if err != nil {
		return "", fmt.Errorf("failed to delete record %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", fmt.Errorf("record %s: %w", id, ErrRecordNotFound)
	}
	return id, nil
}

// GetRecordSummary retrieves a record with its entries and dataset name
func (r *RecordRepo) GetRecordSummary(ctx context.Context, id types.RecordID) (*models.RecordSummary, error) {
	summary := &models.RecordSummary{ID: id}
	err := r.db.QueryRowContext(ctx, `
		SELECT r.publication_date, d.name
		FROM records r
		JOIN datasets d ON d.id = r.dataset_id
		WHERE r.id = ?`, string(id),
	).Scan(&summary.PublicationDate, &summary.Dataset.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("record %s: %w", id, ErrRecordNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record %s: %w", id, err)
	}

	entries, err := entriesForRecord(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	summary.Entries = entries
	return summary, nil
}

func entriesForRecord(ctx context.Context, q querier, id types.RecordID) ([]models.CategoryEntry, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, category, category_value, count
		FROM entries
		WHERE record_id = ?
		ORDER BY position`, string(id),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries for record %s: %w", id, err)
	}
	defer func() { _ = rows.Close() }()

	entries := []models.CategoryEntry{}
	for rows.Next() {
		var e models.CategoryEntry
		if err := rows.Scan(&e.ID, &e.Category, &e.CategoryValue, &e.Count); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func upsertEntries(ctx context.Context, tx *sql.Tx, recordID types.RecordID, data []models.EntryInput) error {
	for i, e := range data {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO entries (id, record_id, category, category_value, count, position)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(record_id, category, category_value)
			DO UPDATE SET count = excluded.count, position = excluded.position`,
			string(types.NewEntryID()), string(recordID), e.Category, e.CategoryValue, e.Count, i,
		)
		if err != nil {
			return fmt.Errorf("failed to write entry %s/%s: %w", e.Category, e.CategoryValue, err)
		}
	}
	return nil
}

func pruneEntries(ctx context.Context, tx *sql.Tx, recordID types.RecordID, keep []models.EntryInput) error {
	existing, err := entriesForRecord(ctx, tx, recordID)
	if err != nil {
		return err
	}

	type pair struct{ category, value string }
	wanted := make(map[pair]bool, len(keep))
	for _, e := range keep {
		wanted[pair{e.Category, e.CategoryValue}] = true
	}

	for _, e := range existing {
		if wanted[pair{e.Category, e.CategoryValue}] {
			continue
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, string(e.ID)); err != nil {
			return fmt.Errorf("failed to remove entry %s: %w", e.ID, err)
		}
	}
	return nil
}
