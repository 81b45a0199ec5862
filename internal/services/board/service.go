package board

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/kanban/internal/editor"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
)

// maxIDAttempts bounds how often a colliding generated id is retried
const maxIDAttempts = 8

// Service defines every board operation. It is the only writer of board state.
//
// Operations on ids that are not on the board are no-ops: they return a nil
// task and a nil error. Returned tasks are copies.
type Service interface {
	// Read operations
	Snapshot() *models.Board
	Task(taskID string) (*models.Task, bool)
	DoneColumnID() string

	// Write operations
	AddTask(columnID string, draft models.TaskDraft) (*models.Task, error)
	EditTask(draft models.TaskDraft) (*models.Task, error)
	SaveTask(sub editor.Submission) (*models.Task, error)
	DeleteTask(taskID string) error

	// Task movements
	MoveTask(taskID, targetColumnID string) (*models.Task, error)
	CompleteTask(taskID string) (*models.Task, error)
}

// service implements Service interface
type service struct {
	mu        sync.RWMutex
	board     *models.Board
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
	doneTitle string
}

// NewService creates a board service owning a private copy of board
func NewService(board *models.Board, opts ...Option) Service {
	s := &service{
		board:     board.Clone(),
		logger:    slog.Default(),
		now:       time.Now,
		newID:     NewTaskID,
		doneTitle: models.DefaultDoneColumnTitle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the current board for rendering
func (s *service) Snapshot() *models.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Clone()
}

// Task returns a copy of the task with the id
func (s *service) Task(taskID string) (*models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, _ := s.board.FindTask(taskID)
	if task == nil {
		return nil, false
	}
	return task.Clone(), true
}

// DoneColumnID returns the id of the completion column, or "" if the board has none
func (s *service) DoneColumnID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if col := s.board.ColumnByTitle(s.doneTitle); col != nil {
		return col.ID
	}
	return ""
}

// MoveTask moves the task to the end of the target column and syncs its status
func (s *service) MoveTask(taskID, targetColumnID string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.board.Column(targetColumnID)
	if target == nil {
		s.logger.Debug("move ignored, unknown column", "task_id", taskID, "column_id", targetColumnID)
		return nil, nil
	}

	moved := s.relocate(taskID, target)
	if moved == nil {
		return nil, nil
	}

	s.publish(events.EventTaskMoved, moved.ID, target.ID,
		fmt.Sprintf("Moved %q to %s", moved.Title, target.Title))
	return moved.Clone(), nil
}

// CompleteTask moves the task to the done column
func (s *service) CompleteTask(taskID string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	done := s.board.ColumnByTitle(s.doneTitle)
	if done == nil {
		s.logger.Debug("complete ignored, board has no done column", "task_id", taskID, "done_title", s.doneTitle)
		return nil, nil
	}

	moved := s.relocate(taskID, done)
	if moved == nil {
		return nil, nil
	}

	s.publish(events.EventTaskCompleted, moved.ID, done.ID, "Task completed!")
	return moved.Clone(), nil
}

// AddTask appends a new task built from the draft to the column
func (s *service) AddTask(columnID string, draft models.TaskDraft) (*models.Task, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.board.Column(columnID)
	if col == nil {
		s.logger.Debug("add ignored, unknown column", "column_id", columnID)
		return nil, nil
	}

	id, err := s.uniqueID()
	if err != nil {
		return nil, err
	}

	now := s.now()
	draft.ID = id
	draft.CreatedAt = &now
	task := draft.Normalize(now).ToTask()
	task.Status = col.Title

	s.replaceColumn(col, append(slices.Clone(col.Tasks), task))

	s.publish(events.EventTaskAdded, task.ID, col.ID, "Task added!")
	return task.Clone(), nil
}

// EditTask replaces the fields of the task with the draft's id.
// The task keeps its column, and its status is taken from that column.
func (s *service) EditTask(draft models.TaskDraft) (*models.Task, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, col := s.board.FindTask(draft.ID)
	if existing == nil {
		s.logger.Debug("edit ignored, unknown task", "task_id", draft.ID)
		return nil, nil
	}

	if draft.CreatedAt == nil {
		created := existing.CreatedAt
		draft.CreatedAt = &created
	}
	updated := draft.Normalize(s.now()).ToTask()
	updated.ID = existing.ID
	updated.Status = col.Title

	tasks := slices.Clone(col.Tasks)
	tasks[col.IndexOf(existing.ID)] = updated
	s.replaceColumn(col, tasks)

	s.publish(events.EventTaskEdited, updated.ID, col.ID, "Task saved!")
	return updated.Clone(), nil
}

// SaveTask commits an editor submission, creating or editing depending on its mode
func (s *service) SaveTask(sub editor.Submission) (*models.Task, error) {
	switch sub.Mode {
	case editor.ModeCreate:
		return s.AddTask(sub.ColumnID, sub.Draft)
	case editor.ModeEdit:
		return s.EditTask(sub.Draft)
	default:
		return nil, fmt.Errorf("unknown editor mode %d", sub.Mode)
	}
}

// DeleteTask removes the task from whichever column holds it
func (s *service) DeleteTask(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	columns := make([]*models.Column, len(s.board.Columns))
	for i, col := range s.board.Columns {
		if col.IndexOf(taskID) < 0 {
			columns[i] = col
			continue
		}
		removed = true
		columns[i] = &models.Column{
			ID:    col.ID,
			Title: col.Title,
			Tasks: slices.DeleteFunc(slices.Clone(col.Tasks), func(t *models.Task) bool {
				return t.ID == taskID
			}),
		}
	}

	if !removed {
		s.logger.Debug("delete ignored, unknown task", "task_id", taskID)
		return nil
	}

	s.board.Columns = columns
	s.publish(events.EventTaskDeleted, taskID, "", "Task deleted")
	return nil
}

// relocate removes the task from its column and appends it to target with the
// status set to target's title. Both columns are replaced in a single swap of
// the column list. Returns nil when the task is missing or already in target.
// Callers must hold the write lock.
func (s *service) relocate(taskID string, target *models.Column) *models.Task {
	task, source := s.board.FindTask(taskID)
	if task == nil {
		s.logger.Debug("relocation ignored, unknown task", "task_id", taskID)
		return nil
	}
	if source.ID == target.ID {
		return nil
	}

	moved := task.Clone()
	moved.Status = target.Title

	idx := source.IndexOf(taskID)
	columns := make([]*models.Column, len(s.board.Columns))
	for i, col := range s.board.Columns {
		switch col.ID {
		case source.ID:
			columns[i] = &models.Column{
				ID:    col.ID,
				Title: col.Title,
				Tasks: slices.Delete(slices.Clone(col.Tasks), idx, idx+1),
			}
		case target.ID:
			columns[i] = &models.Column{
				ID:    col.ID,
				Title: col.Title,
				Tasks: append(slices.Clone(col.Tasks), moved),
			}
		default:
			columns[i] = col
		}
	}
	s.board.Columns = columns
	return moved
}

// replaceColumn swaps in a copy of col holding tasks. Callers must hold the write lock.
func (s *service) replaceColumn(col *models.Column, tasks []*models.Task) {
	columns := slices.Clone(s.board.Columns)
	columns[s.board.ColumnIndex(col.ID)] = &models.Column{ID: col.ID, Title: col.Title, Tasks: tasks}
	s.board.Columns = columns
}

// uniqueID draws ids until one is not already on the board
func (s *service) uniqueID() (string, error) {
	for range maxIDAttempts {
		id := s.newID()
		if id == "" {
			continue
		}
		if task, _ := s.board.FindTask(id); task == nil {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

// publish sends a notification if a publisher is configured
func (s *service) publish(eventType events.EventType, taskID, columnID, message string) {
	s.logger.Info("board changed", "event_type", eventType, "task_id", taskID, "column_id", columnID)
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(events.Event{
		Type:      eventType,
		TaskID:    taskID,
		ColumnID:  columnID,
		Message:   message,
		Timestamp: s.now(),
	})
}

// validateDraft checks the fields that must be rejected rather than defaulted
func validateDraft(d models.TaskDraft) error {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len([]rune(title)) > models.MaxTitleLength {
		return ErrTitleTooLong
	}
	if d.Priority != "" && !d.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, d.Priority)
	}
	return nil
}
