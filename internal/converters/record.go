package converters

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tally/internal/models"
)

var (
	// ErrIndexOutOfRange indicates a change targeted an entry that does not exist
	ErrIndexOutOfRange = errors.New("entry index out of range")

	// ErrNegativeCount indicates a count below zero
	ErrNegativeCount = errors.New("count cannot be negative")
)

// ToFormEntries copies a record's entries into an editable slice.
// The returned slice never aliases the input.
func ToFormEntries(entries []models.CategoryEntry) []models.CategoryEntry {
	result := make([]models.CategoryEntry, len(entries))
	copy(result, entries)
	return result
}

// ReplaceCount returns a copy of entries with only the count at index replaced.
// The input slice is left untouched.
func ReplaceCount(entries []models.CategoryEntry, index, count int) ([]models.CategoryEntry, error) {
	if index < 0 || index >= len(entries) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(entries))
	}
	if count < 0 {
		return nil, ErrNegativeCount
	}

	result := ToFormEntries(entries)
	result[index].Count = count
	return result, nil
}

// ToEntryInputs strips identity from form entries to build a mutation payload
func ToEntryInputs(entries []models.CategoryEntry) []models.EntryInput {
	result := make([]models.EntryInput, len(entries))
	for i, e := range entries {
		result[i] = models.EntryInput{
			Category:      e.Category,
			CategoryValue: e.CategoryValue,
			Count:         e.Count,
		}
	}
	return result
}

// ToTableRow flattens one record into a row keyed by category value
func ToTableRow(record models.Record) models.TableRow {
	counts := make(map[string]int, len(record.Entries))
	for _, e := range record.Entries {
		counts[e.CategoryValue] = e.Count
	}
	return models.TableRow{
		ID:              record.ID,
		Key:             record.ID,
		PublicationDate: record.PublicationDate,
		Counts:          counts,
	}
}

// ToTableRows flattens records in input order. Zero records yield an empty slice.
func ToTableRows(records []models.Record) []models.TableRow {
	rows := make([]models.TableRow, len(records))
	for i, r := range records {
		rows[i] = ToTableRow(r)
	}
	return rows
}

// TableColumns returns the distinct category values across records, grouped by
// category in first-seen order. These are the count columns of the table.
func TableColumns(records []models.Record) []string {
	var all []models.CategoryEntry
	for _, r := range records {
		all = append(all, r.Entries...)
	}

	columns := []string{}
	seen := make(map[string]bool)
	for _, group := range GroupByCategory(all) {
		for _, e := range group.Values {
			if seen[e.CategoryValue] {
				continue
			}
			seen[e.CategoryValue] = true
			columns = append(columns, e.CategoryValue)
		}
	}
	return columns
}

// ScaffoldEntries builds zero-count entries for a new record.
// Category/value pairs already used by the dataset's records win, in first-seen
// order; when there are none the fallback scaffold is used.
func ScaffoldEntries(records []models.Record, fallback []models.ScaffoldCategory) []models.CategoryEntry {
	type pair struct{ category, value string }

	var all []models.CategoryEntry
	for _, r := range records {
		all = append(all, r.Entries...)
	}

	entries := []models.CategoryEntry{}
	seen := make(map[pair]bool)
	for _, group := range GroupByCategory(all) {
		for _, e := range group.Values {
			p := pair{e.Category, e.CategoryValue}
			if seen[p] {
				continue
			}
			seen[p] = true
			entries = append(entries, models.CategoryEntry{Category: e.Category, CategoryValue: e.CategoryValue})
		}
	}
	if len(entries) > 0 {
		return entries
	}

	for _, sc := range fallback {
		for _, v := range sc.Values {
			entries = append(entries, models.CategoryEntry{Category: sc.Category, CategoryValue: v})
		}
	}
	return entries
}
