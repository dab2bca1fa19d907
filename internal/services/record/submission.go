package record

import (
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// Submission is the packaged output of a record form: either a Create or an
// Update. The variant is chosen once, when the form is built.
type Submission interface {
	// Dataset returns the dataset whose record list must be refreshed
	Dataset() types.DatasetID
	isSubmission()
}

// Create adds a new record
type Create struct {
	Input models.CreateRecordInput
}

// Update replaces an existing record's date and counts
type Update struct {
	Input models.UpdateRecordInput
}

// Dataset implements Submission.
func (c Create) Dataset() types.DatasetID { return c.Input.DatasetID }

// Dataset implements Submission.
func (u Update) Dataset() types.DatasetID { return u.Input.DatasetID }

func (Create) isSubmission() {}
func (Update) isSubmission() {}
