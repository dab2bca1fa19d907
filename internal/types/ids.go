package types

import "github.com/google/uuid"

// ID types give semantic meaning to the opaque string identifiers the
// backend hands out. Every identifier is a UUID in canonical form.

// DatasetID identifies a dataset (one program's survey series)
type DatasetID string

// RecordID identifies a single dated record within a dataset
type RecordID string

// EntryID identifies one category/value count within a record
type EntryID string

// NewRecordID generates a fresh random record identifier
func NewRecordID() RecordID {
	return RecordID(uuid.NewString())
}

// NewEntryID generates a fresh random entry identifier
func NewEntryID() EntryID {
	return EntryID(uuid.NewString())
}

// NewDatasetID generates a fresh random dataset identifier
func NewDatasetID() DatasetID {
	return DatasetID(uuid.NewString())
}

func (id DatasetID) String() string { return string(id) }

func (id RecordID) String() string { return string(id) }

func (id EntryID) String() string { return string(id) }

// Valid reports whether the id parses as a UUID
func (id DatasetID) Valid() bool { return validUUID(string(id)) }

// Valid reports whether the id parses as a UUID
func (id RecordID) Valid() bool { return validUUID(string(id)) }

// IsZero reports whether no record id was supplied
func (id RecordID) IsZero() bool { return id == "" }

func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
