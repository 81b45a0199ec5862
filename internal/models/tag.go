package models

// Tag represents a label that can be applied to tasks
type Tag struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"` // Hex color code (e.g., "#5A67D8")
}
