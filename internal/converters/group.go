// Package converters reshapes server records into the forms and tables the
// client renders. Every function here is pure.
package converters

import "github.com/thenoetrevino/tally/internal/models"

// GroupByCategory groups entries by category label.
// Groups appear in the order their category is first seen and each group keeps
// the relative order of its entries. No entry is dropped or duplicated.
func GroupByCategory(entries []models.CategoryEntry) []models.CategoryGroup {
	groups := []models.CategoryGroup{}
	index := make(map[string]int)

	for _, entry := range entries {
		i, ok := index[entry.Category]
		if !ok {
			i = len(groups)
			index[entry.Category] = i
			groups = append(groups, models.CategoryGroup{Category: entry.Category})
		}
		groups[i].Values = append(groups[i].Values, entry)
	}

	return groups
}
