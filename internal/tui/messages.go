package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/services/record"
	"github.com/thenoetrevino/tally/internal/types"
)

// datasetLoadedMsg reports the outcome of a dataset fetch
type datasetLoadedMsg struct {
	dataset *models.Dataset
	err     error
}

// mutationDoneMsg reports the outcome of a write. On success the result
// carries the dataset as reloaded after the write.
type mutationDoneMsg struct {
	op     string
	result *record.Result
	err    error
}

func loadDatasetCmd(ctx context.Context, svc record.Service, id types.DatasetID) tea.Cmd {
	return func() tea.Msg {
		ds, err := svc.GetDataset(ctx, id)
		return datasetLoadedMsg{dataset: ds, err: err}
	}
}

func submitCmd(ctx context.Context, svc record.Service, op string, sub record.Submission) tea.Cmd {
	return func() tea.Msg {
		res, err := svc.Submit(ctx, sub)
		return mutationDoneMsg{op: op, result: res, err: err}
	}
}

func deleteCmd(ctx context.Context, svc record.Service, op string, datasetID types.DatasetID, id types.RecordID) tea.Cmd {
	return func() tea.Msg {
		res, err := svc.DeleteRecord(ctx, datasetID, id)
		return mutationDoneMsg{op: op, result: res, err: err}
	}
}
