package models

import "github.com/thenoetrevino/tally/internal/types"

// CategoryEntry is one demographic bucket's count for one record,
// e.g. category "gender", value "women", count 5.
// ID, Category and CategoryValue never change once a record exists.
type CategoryEntry struct {
	ID            types.EntryID `json:"id"`
	Category      string        `json:"category"`
	CategoryValue string        `json:"categoryValue"`
	Count         int           `json:"count"`
}

// CategoryGroup is the display grouping of entries sharing a category label.
// It is derived on every render and never persisted.
type CategoryGroup struct {
	Category string
	Values   []CategoryEntry
}

// EntryInput is the mutation payload for one category/value count
type EntryInput struct {
	Category      string `json:"category"`
	CategoryValue string `json:"categoryValue"`
	Count         int    `json:"count"`
}

// ScaffoldCategory lists the buckets offered for a category when a form
// starts without an existing record
type ScaffoldCategory struct {
	Category string   `yaml:"category"`
	Values   []string `yaml:"values"`
}
