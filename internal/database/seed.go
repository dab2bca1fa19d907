package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// DemoDatasetID is the fixed id of the dataset created by SeedDemo
const DemoDatasetID types.DatasetID = "5a8ee1d5-2f6f-4c3b-a8a7-0e1b7d3c9f10"

// SeedDemo inserts a demo program and dataset with two records, unless the
// demo dataset already exists. Returns the dataset id.
func SeedDemo(ctx context.Context, store DataStore) (types.DatasetID, error) {
	if _, err := store.GetDataset(ctx, DemoDatasetID); err == nil {
		return DemoDatasetID, nil
	}

	if _, err := store.CreateDataset(ctx, DemoDatasetID, "Radio 1", "Morning Show guests"); err != nil {
		return "", fmt.Errorf("failed to seed dataset: %w", err)
	}

	records := []models.CreateRecordInput{
		{
			DatasetID:       DemoDatasetID,
			PublicationDate: "2024-03-01",
			Data: []models.EntryInput{
				{Category: "gender", CategoryValue: "men", Count: 6},
				{Category: "gender", CategoryValue: "women", Count: 5},
				{Category: "gender", CategoryValue: "others", Count: 1},
			},
		},
		{
			DatasetID:       DemoDatasetID,
			PublicationDate: "2024-04-01",
			Data: []models.EntryInput{
				{Category: "gender", CategoryValue: "men", Count: 4},
				{Category: "gender", CategoryValue: "women", Count: 7},
				{Category: "gender", CategoryValue: "others", Count: 0},
			},
		},
	}
	for _, input := range records {
		if _, err := store.CreateRecord(ctx, input); err != nil {
			return "", fmt.Errorf("failed to seed record %s: %w", input.PublicationDate, err)
		}
	}

	return DemoDatasetID, nil
}
