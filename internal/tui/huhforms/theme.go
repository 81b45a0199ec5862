package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/config/colors"
	"github.com/thenoetrevino/kanban/internal/editor"
)

// TaskFormTheme styles the task editor. The frame color follows the editor mode
// so it matches the popup border: create color for new tasks, edit color otherwise.
func TaskFormTheme(scheme colors.ColorScheme, mode editor.Mode) huh.Theme {
	frame := scheme.Create
	if mode == editor.ModeEdit {
		frame = scheme.Edit
	}

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		s := huh.ThemeBase(isDark)

		var (
			border  = lipgloss.Color(frame)
			accent  = lipgloss.Color(scheme.Accent)
			muted   = lipgloss.Color(scheme.Subtle)
			text    = lipgloss.Color(scheme.Normal)
			heading = lipgloss.Color(scheme.Title)
			danger  = lipgloss.Color(scheme.Delete)
		)

		f := &s.Focused
		f.Base = f.Base.BorderForeground(border)
		f.Title = f.Title.Foreground(heading).Bold(true)
		f.Description = f.Description.Foreground(muted)
		f.ErrorIndicator = f.ErrorIndicator.Foreground(danger)
		f.ErrorMessage = f.ErrorMessage.Foreground(danger)

		// Assignee and tag pickers
		f.SelectSelector = f.SelectSelector.Foreground(accent)
		f.MultiSelectSelector = f.MultiSelectSelector.Foreground(accent)
		f.SelectedOption = f.SelectedOption.Foreground(border)
		f.SelectedPrefix = f.SelectedPrefix.Foreground(border)
		f.UnselectedOption = f.UnselectedOption.Foreground(text)
		f.UnselectedPrefix = f.UnselectedPrefix.Foreground(muted)

		// Save / cancel confirmation
		f.FocusedButton = f.FocusedButton.Foreground(lipgloss.Color(scheme.Background)).Background(border).Bold(true)
		f.BlurredButton = f.BlurredButton.Foreground(text).Background(muted)

		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(border)
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(muted)
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(border)

		s.Blurred = s.Focused
		s.Blurred.Base = s.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		s.Blurred.Title = s.Blurred.Title.Foreground(muted).Bold(false)

		return s
	})
}
