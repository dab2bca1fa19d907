package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tally/internal/models"
)

// RecordFormValues holds the raw text bound to a record form's inputs.
// Counts is indexed like the entries the form was built from.
type RecordFormValues struct {
	Date   string
	Counts []string
}

// RecordFormOptions configures CreateRecordForm
type RecordFormOptions struct {
	Title         string
	Groups        []models.CategoryGroup
	IndexOf       func(category, value string) int
	ValidateDate  func(string) error
	ValidateCount func(string) error
}

// CreateRecordForm creates a huh form with the publication date followed by
// one group of count inputs per category. Inputs write straight into values.
func CreateRecordForm(values *RecordFormValues, opts RecordFormOptions) *huh.Form {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Key("publication_date").
				Title("Publication date").
				Placeholder("YYYY-MM-DD").
				Validate(opts.ValidateDate).
				Value(&values.Date),
		).Title(opts.Title),
	}

	for _, section := range countSections(len(values.Counts), opts) {
		fields := make([]huh.Field, 0, len(section.slots))
		for _, slot := range section.slots {
			fields = append(fields,
				huh.NewInput().
					Key(slot.key).
					Title(slot.title).
					Placeholder("0").
					CharLimit(9).
					Validate(opts.ValidateCount).
					Value(&values.Counts[slot.index]),
			)
		}
		groups = append(groups, huh.NewGroup(fields...).Title(section.category))
	}

	form := huh.NewForm(groups...).WithLayout(huh.LayoutStack)
	return form.WithKeyMap(CreateRecordKeyMap()).WithShowHelp(false)
}

// countSlot is one count input: its field key, label and index into Counts
type countSlot struct {
	key   string
	title string
	index int
}

type countSection struct {
	category string
	slots    []countSlot
}

// countSections lays out the count inputs per category. Entries whose index
// has no value slot are skipped, and so are categories left empty.
func countSections(n int, opts RecordFormOptions) []countSection {
	sections := make([]countSection, 0, len(opts.Groups))
	for _, group := range opts.Groups {
		section := countSection{category: group.Category}
		for _, entry := range group.Values {
			idx := opts.IndexOf(entry.Category, entry.CategoryValue)
			if idx < 0 || idx >= n {
				continue
			}
			section.slots = append(section.slots, countSlot{
				key:   entry.Category + ":" + entry.CategoryValue,
				title: entry.CategoryValue,
				index: idx,
			})
		}
		if len(section.slots) > 0 {
			sections = append(sections, section)
		}
	}
	return sections
}
