package models

import "github.com/thenoetrevino/tally/internal/types"

// Program is the broadcast program a dataset belongs to
type Program struct {
	Name string `json:"name"`
}

// Dataset is a named collection of records tied to a program.
// Datasets are read-only from the client's point of view.
type Dataset struct {
	ID      types.DatasetID `json:"id"`
	Name    string          `json:"name"`
	Program Program         `json:"program"`
	Records []Record        `json:"records"`
}

// FindRecord returns the record with the given id, or nil
func (d *Dataset) FindRecord(id types.RecordID) *Record {
	if d == nil {
		return nil
	}
	for i := range d.Records {
		if d.Records[i].ID == id {
			return &d.Records[i]
		}
	}
	return nil
}
