package models

import (
	"errors"
	"testing"
	"time"
)

func testBoard() *Board {
	due := time.Date(2023, 7, 30, 0, 0, 0, 0, time.UTC)
	return &Board{
		ID:    "board-1",
		Title: "Test",
		Columns: []*Column{
			{ID: "c1", Title: "Backlog", Tasks: []*Task{
				{ID: "t1", Title: "One", Status: "Backlog", Priority: PriorityLow, DueDate: &due, Assignees: []string{"u1"}},
				{ID: "t2", Title: "Two", Status: "Backlog", Priority: PriorityHigh, Assignees: []string{"u1", "u2"}},
			}},
			{ID: "c2", Title: "Done", Tasks: []*Task{
				{ID: "t3", Title: "Three", Status: "Done", Priority: PriorityMedium},
			}},
		},
		Users: []*User{{ID: "u1", Name: "Alex Morgan"}, {ID: "u2", Name: "Taylor Chen"}},
		Tags:  []*Tag{{ID: "g1", Name: "Bug", Color: "#E53E3E"}},
	}
}

// ============================================================================
// Priority Tests
// ============================================================================

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input    string
		expected Priority
	}{
		{"low", PriorityLow},
		{"Medium", PriorityMedium},
		{" HIGH ", PriorityHigh},
		{"urgent", PriorityUrgent},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if err != nil {
				t.Fatalf("ParsePriority(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParsePriority(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParsePriority_Invalid(t *testing.T) {
	for _, input := range []string{"", "critical", "trivial", "med"} {
		if _, err := ParsePriority(input); !errors.Is(err, ErrUnknownPriority) {
			t.Errorf("ParsePriority(%q) error = %v, want ErrUnknownPriority", input, err)
		}
	}
}

func TestPriority_Label(t *testing.T) {
	if PriorityUrgent.Label() != "Urgent" {
		t.Errorf("Label() = %q, want Urgent", PriorityUrgent.Label())
	}
	if Priority("").Label() != "" {
		t.Error("empty priority should have an empty label")
	}
}

// ============================================================================
// Board Tests
// ============================================================================

func TestBoard_FindTask(t *testing.T) {
	b := testBoard()

	task, col := b.FindTask("t3")
	if task == nil || col == nil {
		t.Fatal("expected to find t3")
	}
	if col.ID != "c2" {
		t.Errorf("t3 found in column %s, want c2", col.ID)
	}

	task, col = b.FindTask("missing")
	if task != nil || col != nil {
		t.Error("expected nil task and column for a missing id")
	}
}

func TestBoard_CloneIsDeep(t *testing.T) {
	b := testBoard()
	c := b.Clone()

	c.Columns[0].Tasks[0].Title = "changed"
	c.Columns[0].Tasks[0].Assignees[0] = "u9"
	*c.Columns[0].Tasks[0].DueDate = time.Time{}
	c.Columns[1].Tasks = nil
	c.Users[0].Name = "changed"

	if b.Columns[0].Tasks[0].Title != "One" {
		t.Error("clone shares task structs with the original")
	}
	if b.Columns[0].Tasks[0].Assignees[0] != "u1" {
		t.Error("clone shares assignee slices with the original")
	}
	if b.Columns[0].Tasks[0].DueDate.IsZero() {
		t.Error("clone shares due dates with the original")
	}
	if len(b.Columns[1].Tasks) != 1 {
		t.Error("clone shares task slices with the original")
	}
	if b.Users[0].Name != "Alex Morgan" {
		t.Error("clone shares users with the original")
	}
}

func TestBoard_Counts(t *testing.T) {
	b := testBoard()
	if b.TaskCount() != 3 {
		t.Errorf("TaskCount() = %d, want 3", b.TaskCount())
	}
	if b.AssignedCount("u1") != 2 {
		t.Errorf("AssignedCount(u1) = %d, want 2", b.AssignedCount("u1"))
	}
	if b.AssignedCount("u3") != 0 {
		t.Errorf("AssignedCount(u3) = %d, want 0", b.AssignedCount("u3"))
	}
}

func TestBoard_Validate(t *testing.T) {
	if err := testBoard().Validate(); err != nil {
		t.Fatalf("valid board failed validation: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(b *Board)
		wantErr error
	}{
		{"duplicate task across columns", func(b *Board) {
			b.Columns[1].Tasks = append(b.Columns[1].Tasks, &Task{ID: "t1", Title: "Again", Status: "Done", Priority: PriorityLow})
		}, ErrDuplicateTaskID},
		{"duplicate column", func(b *Board) {
			b.Columns[1].ID = "c1"
		}, ErrDuplicateColumnID},
		{"status mismatch", func(b *Board) {
			b.Columns[0].Tasks[0].Status = "Done"
		}, ErrStatusMismatch},
		{"unknown priority", func(b *Board) {
			b.Columns[0].Tasks[0].Priority = "critical"
		}, ErrUnknownPriority},
		{"duplicate user", func(b *Board) {
			b.Users[1].ID = "u1"
		}, ErrDuplicateUserID},
		{"duplicate tag", func(b *Board) {
			b.Tags = append(b.Tags, &Tag{ID: "g1"})
		}, ErrDuplicateTagID},
		{"blank task title", func(b *Board) {
			b.Columns[0].Tasks[1].Title = "   "
		}, ErrEmptyTaskTitle},
		{"empty task id", func(b *Board) {
			b.Columns[1].Tasks[0].ID = ""
		}, ErrEmptyTaskID},
		{"null task", func(b *Board) {
			b.Columns[0].Tasks = append(b.Columns[0].Tasks, nil)
		}, ErrNullEntry},
		{"null column", func(b *Board) {
			b.Columns = append(b.Columns, nil)
		}, ErrNullEntry},
		{"null user", func(b *Board) {
			b.Users = append(b.Users, nil)
		}, ErrNullEntry},
		{"null tag", func(b *Board) {
			b.Tags = append(b.Tags, nil)
		}, ErrNullEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBoard()
			tt.mutate(b)
			if err := b.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ============================================================================
// Task and Draft Tests
// ============================================================================

func TestTask_IsOverdue(t *testing.T) {
	now := time.Date(2023, 7, 26, 15, 0, 0, 0, time.UTC)
	yesterday := time.Date(2023, 7, 25, 0, 0, 0, 0, time.UTC)
	today := time.Date(2023, 7, 26, 0, 0, 0, 0, time.UTC)

	if !(&Task{DueDate: &yesterday}).IsOverdue(now) {
		t.Error("task due yesterday should be overdue")
	}
	if (&Task{DueDate: &today}).IsOverdue(now) {
		t.Error("task due today should not be overdue")
	}
	if (&Task{}).IsOverdue(now) {
		t.Error("task without due date should not be overdue")
	}
}

func TestTaskDraft_Normalize(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	d := TaskDraft{Title: "  X  "}.Normalize(now)

	if d.Title != "X" {
		t.Errorf("Title = %q, want X", d.Title)
	}
	if d.Priority != PriorityMedium {
		t.Errorf("Priority = %q, want medium", d.Priority)
	}
	if d.DueDate != nil {
		t.Error("DueDate should stay nil")
	}
	if d.CreatedAt == nil || !d.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", d.CreatedAt, now)
	}
	if d.Assignees == nil || d.Tags == nil || d.Comments == nil || d.Attachments == nil {
		t.Error("sequences should be empty, not nil")
	}

	task := d.ToTask()
	if task.Title != "X" || !task.CreatedAt.Equal(now) || len(task.Assignees) != 0 {
		t.Errorf("ToTask() = %+v", task)
	}
}

func TestDraftFromTask_DoesNotAlias(t *testing.T) {
	b := testBoard()
	src := b.Columns[0].Tasks[0]

	d := DraftFromTask(src)
	d.Assignees[0] = "changed"
	*d.DueDate = time.Time{}

	if src.Assignees[0] != "u1" {
		t.Error("draft shares assignees with the source task")
	}
	if src.DueDate.IsZero() {
		t.Error("draft shares due date with the source task")
	}
}

func TestUser_Initials(t *testing.T) {
	tests := map[string]string{
		"Alex Morgan":      "AM",
		"Sam":              "S",
		"Mary Jane Watson": "MJ",
		"":                 "",
	}
	for name, want := range tests {
		u := User{Name: name}
		if got := u.Initials(); got != want {
			t.Errorf("Initials(%q) = %q, want %q", name, got, want)
		}
	}
}
