package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/services/board"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// BoardChangedMsg is sent when the board service reports a successful mutation
type BoardChangedMsg struct {
	Event events.Event
}

// Model represents the application state for the TUI.
// The board itself lives in the board service; Snapshot is a read-only copy
// refreshed after every mutation.
type Model struct {
	Ctx    context.Context
	Config *config.Config
	Board  board.Service

	Snapshot *models.Board

	UiState           *state.UIState
	NotificationState *state.NotificationState
	FormState         *state.FormState

	// EventChan receives board change notifications from the app's bus
	EventChan   <-chan events.Event
	unsubscribe func()

	// Now is the clock used for overdue highlighting
	Now func() time.Time
}

// InitialModel creates the TUI model over the application's board service
func InitialModel(ctx context.Context, application *app.App) Model {
	cfg := application.Config()
	components.InitStyles(cfg.ColorScheme)

	eventChan, unsubscribe := application.Events().Subscribe(events.DefaultBufferSize)

	return Model{
		Ctx:               ctx,
		Config:            cfg,
		Board:             application.BoardService,
		Snapshot:          application.BoardService.Snapshot(),
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		FormState:         state.NewFormState(),
		EventChan:         eventChan,
		unsubscribe:       unsubscribe,
		Now:               time.Now,
	}
}

// Init starts listening for board changes.
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.subscribeToEvents()
}

// subscribeToEvents returns a command that waits for the next board change.
// Returns nil if EventChan is not initialized.
func (m Model) subscribeToEvents() tea.Cmd {
	if m.EventChan == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case event, ok := <-m.EventChan:
			if !ok {
				// bus closed, the app is shutting down
				return nil
			}
			return BoardChangedMsg{Event: event}
		case <-m.Ctx.Done():
			return nil
		}
	}
}

// refresh replaces the snapshot with the current board and keeps the selection valid
func (m *Model) refresh() {
	m.Snapshot = m.Board.Snapshot()
	m.clampSelection()
}

// clampSelection keeps the selected column and task within the board
func (m *Model) clampSelection() {
	columns := m.Snapshot.Columns
	if len(columns) == 0 {
		m.UiState.ResetSelection()
		return
	}

	col := min(m.UiState.SelectedColumn(), len(columns)-1)
	m.UiState.SetSelectedColumn(col)

	tasks := columns[col].Tasks
	m.UiState.SetSelectedTask(min(m.UiState.SelectedTask(), max(len(tasks)-1, 0)))

	visible := m.visibleTaskCount()
	for _, c := range columns {
		m.UiState.ClampTaskScroll(c.ID, len(c.Tasks), visible)
	}
	m.UiState.EnsureTaskVisible(columns[col].ID, m.UiState.SelectedTask(), visible)
	m.UiState.ClampViewport(len(columns))
	m.UiState.EnsureSelectionVisible(col)
}

// selectTask moves the cursor onto the task, wherever it is on the board
func (m *Model) selectTask(taskID string) {
	for ci, col := range m.Snapshot.Columns {
		if ti := col.IndexOf(taskID); ti >= 0 {
			m.UiState.SetSelectedColumn(ci)
			m.UiState.SetSelectedTask(ti)
			m.UiState.EnsureSelectionVisible(ci)
			m.UiState.EnsureTaskVisible(col.ID, ti, m.visibleTaskCount())
			return
		}
	}
}

// visibleTaskCount returns how many cards fit in a column at the current height
func (m Model) visibleTaskCount() int {
	return components.VisibleTaskCount(m.UiState.ContentHeight())
}

// getCurrentColumn returns the currently selected column
// Returns nil if there are no columns
func (m Model) getCurrentColumn() *models.Column {
	columns := m.Snapshot.Columns
	if m.UiState.SelectedColumn() >= len(columns) {
		return nil
	}
	return columns[m.UiState.SelectedColumn()]
}

// getCurrentTask returns the currently selected task
// Returns nil if there are no tasks in the current column or no columns exist
func (m Model) getCurrentTask() *models.Task {
	col := m.getCurrentColumn()
	if col == nil || m.UiState.SelectedTask() >= len(col.Tasks) {
		return nil
	}
	return col.Tasks[m.UiState.SelectedTask()]
}

// now returns the model clock, defaulting to time.Now
func (m Model) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}
