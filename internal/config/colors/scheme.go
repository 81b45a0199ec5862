package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Backgrounds
	Background       string `yaml:"background"`
	ColumnBackground string `yaml:"column_background"`

	// Semantic colors
	Create string `yaml:"create"` // editor in create mode
	Edit   string `yaml:"edit"`   // editor in edit mode
	Delete string `yaml:"delete"` // delete confirmations

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	TaskBackground string `yaml:"task_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	GrabbedBorder  string `yaml:"grabbed_border"`
	Overdue        string `yaml:"overdue"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// Presets lists the names accepted by GetPreset
var Presets = []string{"default", "monochrome"}

// GetPreset returns a preset color scheme by name, falling back to the default
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields returns pointers to every color field, keyed by yaml name
func (c *ColorScheme) fields() map[string]*string {
	return map[string]*string{
		"accent":            &c.Accent,
		"background":        &c.Background,
		"column_background": &c.ColumnBackground,
		"create":            &c.Create,
		"edit":              &c.Edit,
		"delete":            &c.Delete,
		"column_border":     &c.ColumnBorder,
		"task_border":       &c.TaskBorder,
		"task_background":   &c.TaskBackground,
		"selected_border":   &c.SelectedBorder,
		"selected_bg":       &c.SelectedBg,
		"grabbed_border":    &c.GrabbedBorder,
		"overdue":           &c.Overdue,
		"title":             &c.Title,
		"subtle":            &c.Subtle,
		"normal":            &c.Normal,
		"info_fg":           &c.InfoFg,
		"info_bg":           &c.InfoBg,
		"warning_fg":        &c.WarningFg,
		"warning_bg":        &c.WarningBg,
		"error_fg":          &c.ErrorFg,
		"error_bg":          &c.ErrorBg,
		"status_bar_bg":     &c.StatusBarBg,
		"status_bar_text":   &c.StatusBarText,
	}
}

// ApplyDefaults fills in missing color values using the preset as base.
// Custom values already set are kept.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset).fields()
	for name, field := range c.fields() {
		if *field == "" {
			*field = *preset[name]
		}
	}
}

// MergeFrom overrides colors with every non-empty value from other.
// A preset in other replaces the preset name but not colors already customized.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	theirs := other.fields()
	for name, field := range c.fields() {
		if v := *theirs[name]; v != "" {
			*field = v
		}
	}
}
