package theme

import "github.com/thenoetrevino/kanban/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Edit           string
	Delete         string
	SelectedBorder string
	SelectedBg     string
	GrabbedBorder  string
	TaskBg         string
	Overdue        string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Background = colors.Background
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	GrabbedBorder = colors.GrabbedBorder
	TaskBg = colors.TaskBackground
	Overdue = colors.Overdue
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
