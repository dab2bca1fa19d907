package graphql

import (
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// Operation names, also used as the operationName on the wire
const (
	OpGetDataset   = "GetDataset"
	OpCreateRecord = "CreateRecord"
	OpUpdateRecord = "UpdateRecord"
	OpDeleteRecord = "DeleteRecord"
)

// Selection sets. Field sets match what the views render; anything else is
// left to the server.

type entryNode struct {
	ID            types.EntryID `graphql:"id"`
	Category      string        `graphql:"category"`
	CategoryValue string        `graphql:"categoryValue"`
	Count         int           `graphql:"count"`
}

type recordNode struct {
	ID              types.RecordID `graphql:"id"`
	PublicationDate string         `graphql:"publicationDate"`
	Entries         []entryNode    `graphql:"entries"`
}

type datasetNode struct {
	ID      types.DatasetID `graphql:"id"`
	Name    string          `graphql:"name"`
	Program struct {
		Name string `graphql:"name"`
	} `graphql:"program"`
	Records []recordNode `graphql:"records"`
}

type datasetRefNode struct {
	Name string `graphql:"name"`
}

type createdRecordNode struct {
	ID              types.RecordID `graphql:"id"`
	PublicationDate string         `graphql:"publicationDate"`
	Dataset         datasetRefNode `graphql:"dataset"`
}

type updatedRecordNode struct {
	ID              types.RecordID `graphql:"id"`
	PublicationDate string         `graphql:"publicationDate"`
	Dataset         datasetRefNode `graphql:"dataset"`
	Entries         []entryNode    `graphql:"entries"`
}

// query GetDataset($id: ID!)
type getDatasetQuery struct {
	Dataset *datasetNode `graphql:"dataset(id: $id)"`
}

// mutation CreateRecord($input: CreateRecordInput!)
type createRecordMutation struct {
	CreateRecord *createdRecordNode `graphql:"createRecord(input: $input)"`
}

// mutation UpdateRecord($input: UpdateRecordInput!)
type updateRecordMutation struct {
	UpdateRecord *updatedRecordNode `graphql:"updateRecord(input: $input)"`
}

// mutation DeleteRecord($id: ID!)
type deleteRecordMutation struct {
	DeleteRecord *struct {
		ID types.RecordID `graphql:"id"`
	} `graphql:"deleteRecord(id: $id)"`
}

func toEntries(nodes []entryNode) []models.CategoryEntry {
	entries := make([]models.CategoryEntry, len(nodes))
	for i, n := range nodes {
		entries[i] = models.CategoryEntry{
			ID:            n.ID,
			Category:      n.Category,
			CategoryValue: n.CategoryValue,
			Count:         n.Count,
		}
	}
	return entries
}

// toModel converts the selection into a dataset whose Records is never nil
func (d *datasetNode) toModel() *models.Dataset {
	records := make([]models.Record, len(d.Records))
	for i, r := range d.Records {
		records[i] = models.Record{
			ID:              r.ID,
			PublicationDate: r.PublicationDate,
			Entries:         toEntries(r.Entries),
		}
	}
	return &models.Dataset{
		ID:      d.ID,
		Name:    d.Name,
		Program: models.Program{Name: d.Program.Name},
		Records: records,
	}
}

func (n *createdRecordNode) toModel() *models.RecordSummary {
	return &models.RecordSummary{
		ID:              n.ID,
		PublicationDate: n.PublicationDate,
		Dataset:         models.DatasetRef{Name: n.Dataset.Name},
	}
}

func (n *updatedRecordNode) toModel() *models.RecordSummary {
	return &models.RecordSummary{
		ID:              n.ID,
		PublicationDate: n.PublicationDate,
		Dataset:         models.DatasetRef{Name: n.Dataset.Name},
		Entries:         toEntries(n.Entries),
	}
}
