package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Look up tasks",
		Long:  "List the tasks on the board or show a single task.",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// taskView is a task together with the column that holds it
type taskView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	ColumnID string `json:"column_id"`
	Priority string `json:"priority"`
	DueDate  string `json:"due_date,omitempty"`
}

func (v taskView) GetID() string {
	return v.ID
}
