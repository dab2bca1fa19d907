package models

import "github.com/thenoetrevino/tally/internal/types"

// DateLayout is the wire and display format of publication dates
const DateLayout = "2006-01-02"

// Record is one dated snapshot of category counts for a dataset
type Record struct {
	ID              types.RecordID  `json:"id"`
	PublicationDate string          `json:"publicationDate"`
	Entries         []CategoryEntry `json:"entries"`
}

// RecordSummary is what the backend returns from a create or update
type RecordSummary struct {
	ID              types.RecordID  `json:"id"`
	PublicationDate string          `json:"publicationDate"`
	Dataset         DatasetRef      `json:"dataset"`
	Entries         []CategoryEntry `json:"entries,omitempty"`
}

// DatasetRef is the slim dataset projection embedded in mutation results
type DatasetRef struct {
	Name string `json:"name"`
}

// CreateRecordInput carries everything needed to add a record to a dataset
type CreateRecordInput struct {
	DatasetID       types.DatasetID `json:"datasetId"`
	PublicationDate string          `json:"publicationDate"`
	Data            []EntryInput    `json:"data"`
}

// UpdateRecordInput carries a replacement date and counts for a record.
// DatasetID is not sent to the backend; it names the dataset to refresh.
type UpdateRecordInput struct {
	ID              types.RecordID  `json:"id,omitempty"`
	DatasetID       types.DatasetID `json:"-"`
	PublicationDate string          `json:"publicationDate"`
	Data            []EntryInput    `json:"data"`
}

// TableRow is a record flattened for tabular display: one count per
// category value plus the fixed identity columns
type TableRow struct {
	ID              types.RecordID
	Key             types.RecordID
	PublicationDate string
	Counts          map[string]int
}
