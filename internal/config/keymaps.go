package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	EditTask      string `yaml:"edit_task"`
	DeleteTask    string `yaml:"delete_task"`
	CompleteTask  string `yaml:"complete_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`
	GrabTask      string `yaml:"grab_task"`
	ViewTask      string `yaml:"view_task"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Other
	ToggleSidebar string `yaml:"toggle_sidebar"`
	ShowHelp      string `yaml:"show_help"`
	Quit          string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:       "a",
		EditTask:      "e",
		DeleteTask:    "d",
		CompleteTask:  "c",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",
		GrabTask:      "m",
		ViewTask:      "space",
		SaveForm:      "ctrl+s",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		// Other
		ToggleSidebar: "b",
		ShowHelp:      "?",
		Quit:          "q",
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

	fill(&k.AddTask, defaults.AddTask)
	fill(&k.EditTask, defaults.EditTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.CompleteTask, defaults.CompleteTask)
	fill(&k.MoveTaskLeft, defaults.MoveTaskLeft)
	fill(&k.MoveTaskRight, defaults.MoveTaskRight)
	fill(&k.GrabTask, defaults.GrabTask)
	fill(&k.ViewTask, defaults.ViewTask)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.ToggleSidebar, defaults.ToggleSidebar)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
