package cli

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/tally/internal/models"
)

// ParseEntry parses one --entry flag of the form category:value=count,
// e.g. "gender:women=5"
func ParseEntry(raw string) (models.EntryInput, error) {
	pair, countText, ok := strings.Cut(raw, "=")
	if !ok {
		return models.EntryInput{}, Usagef("entry %q must look like category:value=count", raw)
	}
	category, value, ok := strings.Cut(pair, ":")
	category, value = strings.TrimSpace(category), strings.TrimSpace(value)
	if !ok || category == "" || value == "" {
		return models.EntryInput{}, Usagef("entry %q must look like category:value=count", raw)
	}

	count, err := models.ParseCount(countText)
	if err != nil {
		return models.EntryInput{}, fmt.Errorf("entry %s:%s: %w", category, value, err)
	}

	return models.EntryInput{Category: category, CategoryValue: value, Count: count}, nil
}

// ParseEntries parses every --entry flag. A category/value pair given twice
// keeps the last count.
func ParseEntries(raw []string) ([]models.EntryInput, error) {
	entries := make([]models.EntryInput, 0, len(raw))
	index := make(map[string]int, len(raw))
	for _, r := range raw {
		entry, err := ParseEntry(r)
		if err != nil {
			return nil, err
		}
		key := entry.Category + ":" + entry.CategoryValue
		if i, seen := index[key]; seen {
			entries[i] = entry
			continue
		}
		index[key] = len(entries)
		entries = append(entries, entry)
	}
	return entries, nil
}
