package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/tally/internal/converters"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/services/record"
	"github.com/thenoetrevino/tally/internal/types"
)

var (
	// ErrMissingRecordID indicates an edit form was requested without a record
	ErrMissingRecordID = errors.New("update form requires a record id")

	// ErrFieldCount indicates a set of count fields that does not match the entries
	ErrFieldCount = errors.New("count fields do not match the form entries")
)

// FormMode says which mutation a record form submits
type FormMode int

const (
	FormModeCreate FormMode = iota // Adds a new record
	FormModeUpdate                 // Replaces an existing record
)

func (m FormMode) String() string {
	if m == FormModeUpdate {
		return "update"
	}
	return "create"
}

// RecordForm holds the editable state of one record form.
// The mode is fixed when the form is built and never changes afterwards.
type RecordForm struct {
	mode            FormMode
	datasetID       types.DatasetID
	recordID        types.RecordID
	publicationDate string
	entries         []models.CategoryEntry
}

// NewCreateForm builds an add-mode form. Every scaffold entry starts at zero
// and the date defaults to now.
func NewCreateForm(datasetID types.DatasetID, scaffold []models.CategoryEntry, now time.Time) *RecordForm {
	entries := converters.ToFormEntries(scaffold)
	for i := range entries {
		entries[i].Count = 0
	}
	return &RecordForm{
		mode:            FormModeCreate,
		datasetID:       datasetID,
		publicationDate: now.Format(models.DateLayout),
		entries:         entries,
	}
}

// NewUpdateForm builds an edit-mode form seeded from an existing record.
func NewUpdateForm(datasetID types.DatasetID, rec models.Record) (*RecordForm, error) {
	if rec.ID.IsZero() {
		return nil, ErrMissingRecordID
	}
	return &RecordForm{
		mode:            FormModeUpdate,
		datasetID:       datasetID,
		recordID:        rec.ID,
		publicationDate: rec.PublicationDate,
		entries:         converters.ToFormEntries(rec.Entries),
	}, nil
}

// Mode returns the form's mutation variant.
func (f *RecordForm) Mode() FormMode {
	return f.mode
}

// DatasetID returns the dataset the form writes into.
func (f *RecordForm) DatasetID() types.DatasetID {
	return f.datasetID
}

// RecordID returns the edited record's id, "" in create mode.
func (f *RecordForm) RecordID() types.RecordID {
	return f.recordID
}

// PublicationDate returns the current date field.
func (f *RecordForm) PublicationDate() string {
	return f.publicationDate
}

// Entries returns a copy of the current entries.
func (f *RecordForm) Entries() []models.CategoryEntry {
	return converters.ToFormEntries(f.entries)
}

// Groups returns the entries grouped by category for display.
func (f *RecordForm) Groups() []models.CategoryGroup {
	return converters.GroupByCategory(f.entries)
}

// IndexOf returns the position of the category/value entry, or -1.
func (f *RecordForm) IndexOf(category, value string) int {
	for i, e := range f.entries {
		if e.Category == category && e.CategoryValue == value {
			return i
		}
	}
	return -1
}

// HandleChange applies raw count text to the entry at index.
// Invalid input returns an error and leaves every entry unchanged.
func (f *RecordForm) HandleChange(index int, raw string) error {
	count, err := models.ParseCount(raw)
	if err != nil {
		return err
	}
	entries, err := converters.ReplaceCount(f.entries, index, count)
	if err != nil {
		return err
	}
	f.entries = entries
	return nil
}

// SetPublicationDate replaces the date field.
func (f *RecordForm) SetPublicationDate(raw string) error {
	date, err := models.ParseDate(raw)
	if err != nil {
		return err
	}
	f.publicationDate = date
	return nil
}

// Apply parses the date and one raw count per entry, then commits them
// together. Any invalid value returns an error and leaves the form unchanged.
func (f *RecordForm) Apply(date string, counts []string) error {
	if len(counts) != len(f.entries) {
		return fmt.Errorf("%w: %d fields for %d entries", ErrFieldCount, len(counts), len(f.entries))
	}

	parsedDate, err := models.ParseDate(date)
	if err != nil {
		return err
	}

	entries := converters.ToFormEntries(f.entries)
	for i, raw := range counts {
		count, err := models.ParseCount(raw)
		if err != nil {
			return fmt.Errorf("%s %s: %w", entries[i].Category, entries[i].CategoryValue, err)
		}
		entries[i].Count = count
	}

	f.entries = entries
	f.publicationDate = parsedDate
	return nil
}

// Submission packages the form as the mutation its mode selects.
func (f *RecordForm) Submission() record.Submission {
	data := converters.ToEntryInputs(f.entries)
	if f.mode == FormModeUpdate {
		return record.Update{Input: models.UpdateRecordInput{
			ID:              f.recordID,
			DatasetID:       f.datasetID,
			PublicationDate: f.publicationDate,
			Data:            data,
		}}
	}
	return record.Create{Input: models.CreateRecordInput{
		DatasetID:       f.datasetID,
		PublicationDate: f.publicationDate,
		Data:            data,
	}}
}
