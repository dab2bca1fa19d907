package config

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - add form, success
	Edit   string `yaml:"edit"`   // Blue - edit form
	Delete string `yaml:"delete"` // Red - delete confirmations

	// UI element colors
	Border     string `yaml:"border"`
	SelectedBg string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors
	InfoFg    string `yaml:"info_fg"`
	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:        "default",
		Accent:        "#874BFD",
		Create:        "#5FD75F",
		Edit:          "#5F87D7",
		Delete:        "#FF0000",
		Border:        "#5F87D7",
		SelectedBg:    "#3A3A3A",
		Title:         "#D75FD7",
		Subtle:        "#585858",
		Normal:        "#D0D0D0",
		InfoFg:        "#00AFFF",
		WarningFg:     "#FFD700",
		ErrorFg:       "#FF5F5F",
		StatusBarBg:   "#874BFD", // Matches accent
		StatusBarText: "#D0D0D0", // Matches normal text
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:        "monochrome",
		Accent:        "#FFFFFF",
		Create:        "#FFFFFF",
		Edit:          "#FFFFFF",
		Delete:        "#FFFFFF",
		Border:        "#FFFFFF",
		SelectedBg:    "#3A3A3A",
		Title:         "#FFFFFF",
		Subtle:        "#585858",
		Normal:        "#D0D0D0",
		InfoFg:        "#FFFFFF",
		WarningFg:     "#FFFFFF",
		ErrorFg:       "#FFFFFF",
		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#FFFFFF",
	}
}

// presetScheme returns a preset color scheme by name
func presetScheme(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// fields lists every color slot alongside its counterpart in other, in a fixed order
func (c *ColorScheme) fields(other *ColorScheme) [][2]*string {
	return [][2]*string{
		{&c.Accent, &other.Accent},
		{&c.Create, &other.Create},
		{&c.Edit, &other.Edit},
		{&c.Delete, &other.Delete},
		{&c.Border, &other.Border},
		{&c.SelectedBg, &other.SelectedBg},
		{&c.Title, &other.Title},
		{&c.Subtle, &other.Subtle},
		{&c.Normal, &other.Normal},
		{&c.InfoFg, &other.InfoFg},
		{&c.WarningFg, &other.WarningFg},
		{&c.ErrorFg, &other.ErrorFg},
		{&c.StatusBarBg, &other.StatusBarBg},
		{&c.StatusBarText, &other.StatusBarText},
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := presetScheme(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	for _, pair := range c.fields(&preset) {
		if *pair[0] == "" {
			*pair[0] = *pair[1]
		}
	}
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	for _, pair := range c.fields(&other) {
		if *pair[1] != "" {
			*pair[0] = *pair[1]
		}
	}
}
