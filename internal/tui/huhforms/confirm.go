package huhforms

import "charm.land/huh/v2"

// CreateDeleteConfirmForm asks before a record is removed from the dataset
func CreateDeleteConfirmForm(description string, confirm *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title("Delete this record?").
				Description(description).
				Affirmative("Delete").
				Negative("Keep").
				Value(confirm),
		),
	).WithShowHelp(false)
}
