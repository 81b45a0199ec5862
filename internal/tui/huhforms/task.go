package huhforms

import (
	"fmt"
	"strings"
	"time"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/kanban/internal/editor"
	"github.com/thenoetrevino/kanban/internal/models"
)

// CreateTaskForm creates a huh form for adding/editing a task.
// Every field is bound to the editor, so the draft is updated in place.
func CreateTaskForm(
	ed *editor.Editor,
	board *models.Board,
	confirm *bool,
	descriptionLines int,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter task title...").
			CharLimit(models.MaxTitleLength).
			Value(&ed.Title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown supported...").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(&ed.Description),

		huh.NewSelect[string]().
			Key("priority").
			Title("Priority").
			Options(PriorityOptions()...).
			Value(&ed.Priority),

		huh.NewInput().
			Key("due").
			Title("Due date").
			Placeholder(models.DueDateLayout + " (optional)").
			Validate(ValidateDueDate).
			Value(&ed.DueDate),
	}

	if len(board.Users) > 0 {
		fields = append(fields,
			huh.NewMultiSelect[string]().
				Key("assignees").
				Title("Assignees").
				Options(UserOptions(board.Users)...).
				Value(&ed.Assignees),
		)
	}

	if len(board.Tags) > 0 {
		fields = append(fields,
			huh.NewMultiSelect[string]().
				Key("tags").
				Title("Tags").
				Options(TagOptions(board.Tags)...).
				Value(&ed.Tags),
		)
	}

	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle(ed.Mode())).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}

func confirmTitle(mode editor.Mode) string {
	if mode == editor.ModeEdit {
		return "Save changes?"
	}
	return "Create this task?"
}

// PriorityOptions lists every priority, lowest first
func PriorityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.Priorities))
	for _, p := range models.Priorities {
		opts = append(opts, huh.NewOption(p.Label(), string(p)))
	}
	return opts
}

// UserOptions lists board members as "Name (Role)"
func UserOptions(users []*models.User) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(users))
	for _, u := range users {
		label := u.Name
		if u.Role != "" {
			label = fmt.Sprintf("%s (%s)", u.Name, u.Role)
		}
		opts = append(opts, huh.NewOption(label, u.ID))
	}
	return opts
}

// TagOptions lists tags by name
func TagOptions(tags []*models.Tag) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(tags))
	for _, t := range tags {
		opts = append(opts, huh.NewOption(t.Name, t.ID))
	}
	return opts
}

// ValidateDueDate accepts an empty value or a date in models.DueDateLayout
func ValidateDueDate(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if _, err := time.Parse(models.DueDateLayout, value); err != nil {
		return editor.ErrInvalidDueDate
	}
	return nil
}
