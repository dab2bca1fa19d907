package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Records
	AddRecord    string `yaml:"add_record"`
	EditRecord   string `yaml:"edit_record"`
	DeleteRecord string `yaml:"delete_record"`
	Refresh      string `yaml:"refresh"`

	// Result screen
	AddAnother string `yaml:"add_another"`

	// Navigation
	PrevRow string `yaml:"prev_row"`
	NextRow string `yaml:"next_row"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddRecord:    "a",
		EditRecord:   "e",
		DeleteRecord: "d",
		Refresh:      "r",

		AddAnother: "n",

		PrevRow: "k",
		NextRow: "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(field *string, def string) {
		if *field == "" {
			*field = def
		}
	}
	fill(&k.AddRecord, defaults.AddRecord)
	fill(&k.EditRecord, defaults.EditRecord)
	fill(&k.DeleteRecord, defaults.DeleteRecord)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.AddAnother, defaults.AddAnother)
	fill(&k.PrevRow, defaults.PrevRow)
	fill(&k.NextRow, defaults.NextRow)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
