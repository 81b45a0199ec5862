package models

// Column represents a kanban board column (e.g., "Backlog", "In Progress", "Done").
// The title doubles as the status value of every task it holds.
// Tasks are kept in insertion order; there is no explicit rank.
type Column struct {
	ID    string  `yaml:"id" json:"id"`
	Title string  `yaml:"title" json:"title"`
	Tasks []*Task `yaml:"tasks" json:"tasks"`
}

// IndexOf returns the position of the task in the column, or -1
func (c *Column) IndexOf(taskID string) int {
	for i, t := range c.Tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}
