package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode         Mode = iota // Default navigation mode
	GrabMode                       // A task is picked up and follows the target column
	TaskFormMode                   // Task editor form with huh
	DeleteConfirmMode              // Confirming task deletion
	DiscardConfirmMode             // Confirming discard of editor changes
	HelpMode                       // Displaying help screen
	DetailMode                     // Read-only task detail view
)

// String returns a short label used in the status bar
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case GrabMode:
		return "MOVE"
	case TaskFormMode:
		return "EDIT"
	case DeleteConfirmMode, DiscardConfirmMode:
		return "CONFIRM"
	case HelpMode:
		return "HELP"
	case DetailMode:
		return "VIEW"
	default:
		return "UNKNOWN"
	}
}

// DiscardContext tracks information for discard confirmation dialogs.
// It stores the mode to return to if the user cancels, and a context-specific message.
type DiscardContext struct {
	SourceMode Mode   // The mode to return to if user cancels discard (N/ESC)
	Message    string // Context-specific message (e.g., "Discard task?")
}

// GrabState describes a task being dragged between columns
type GrabState struct {
	TaskID       string
	SourceColumn int // index of the column the task was picked up from
	TargetColumn int // index of the column the task would be dropped into
}

// Layout sizes shared by the view and the viewport calculation
const (
	ColumnWidth    = 46 // 40 content + 2 padding + 2 border + 2 spacing
	SidebarWidth   = 28
	reservedWidth  = 4 // margins and scroll indicators
	headerHeight   = 3 // board title, description, gap line
	statusBarLines = 1
)

// UIState manages the user interface state.
// This includes navigation (column/task selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	selectedColumn int
	selectedTask   int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int
	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// taskScrollOffsets maps column id to the index of its first visible task
	taskScrollOffsets map[string]int

	discardContext *DiscardContext
	grab           *GrabState

	sidebarVisible bool
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1, // recalculated when width is set
		taskScrollOffsets: make(map[string]int),
		sidebarVisible:    true,
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the columns.
// This is terminal height minus header and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	return max(s.height-headerHeight-statusBarLines, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// SidebarVisible reports whether the team sidebar is shown
func (s *UIState) SidebarVisible() bool {
	return s.sidebarVisible
}

// ToggleSidebar shows or hides the team sidebar and recalculates viewport size
func (s *UIState) ToggleSidebar() {
	s.sidebarVisible = !s.sidebarVisible
	s.calculateViewportSize()
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = offset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many columns can fit in the terminal width,
// leaving room for the sidebar when it is shown. At least 1 column is always visible.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	availableWidth := s.width - reservedWidth
	if s.sidebarVisible {
		availableWidth -= SidebarWidth
	}

	s.viewportSize = max(1, availableWidth/ColumnWidth)
}

// ClampViewport keeps the viewport within the available columns
func (s *UIState) ClampViewport(columnsLen int) {
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
}

// EnsureSelectionVisible adjusts the viewport to ensure the given column is visible.
func (s *UIState) EnsureSelectionVisible(column int) {
	if column < s.viewportOffset {
		s.viewportOffset = column
	}
	if column >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = column - s.viewportSize + 1
	}
}

// ResetSelection resets both column and task selection to zero.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	s.viewportOffset = 0
}

// DiscardContext returns the current discard context.
func (s *UIState) DiscardContext() *DiscardContext {
	return s.discardContext
}

// SetDiscardContext updates the discard context.
func (s *UIState) SetDiscardContext(ctx *DiscardContext) {
	s.discardContext = ctx
}

// ClearDiscardContext resets the discard context to nil.
func (s *UIState) ClearDiscardContext() {
	s.discardContext = nil
}

// Grab returns the task being dragged, or nil
func (s *UIState) Grab() *GrabState {
	return s.grab
}

// StartGrab picks up a task from the column at index column
func (s *UIState) StartGrab(taskID string, column int) {
	s.grab = &GrabState{TaskID: taskID, SourceColumn: column, TargetColumn: column}
	s.mode = GrabMode
}

// MoveGrabTarget shifts the drop target by delta columns, staying within bounds.
// Returns false if the target did not change.
func (s *UIState) MoveGrabTarget(delta, columnsLen int) bool {
	if s.grab == nil {
		return false
	}
	target := s.grab.TargetColumn + delta
	if target < 0 || target >= columnsLen {
		return false
	}
	s.grab.TargetColumn = target
	s.EnsureSelectionVisible(target)
	return true
}

// EndGrab drops the grab state and returns to normal mode
func (s *UIState) EndGrab() {
	s.grab = nil
	s.mode = NormalMode
}

// TaskScrollOffset returns the vertical scroll offset for a given column.
func (s *UIState) TaskScrollOffset(columnID string) int {
	return s.taskScrollOffsets[columnID]
}

// SetTaskScrollOffset updates the vertical scroll offset for a given column.
func (s *UIState) SetTaskScrollOffset(columnID string, offset int) {
	s.taskScrollOffsets[columnID] = max(0, offset)
}

// EnsureTaskVisible adjusts the scroll offset to ensure the selected task is visible.
//
// Parameters:
//   - columnID: the column containing the task
//   - selectedTaskIdx: index of the selected task within the column
//   - visibleCount: number of tasks that can be displayed at once
func (s *UIState) EnsureTaskVisible(columnID string, selectedTaskIdx int, visibleCount int) {
	offset := s.TaskScrollOffset(columnID)

	if selectedTaskIdx < offset {
		s.taskScrollOffsets[columnID] = selectedTaskIdx
	}
	if selectedTaskIdx >= offset+visibleCount {
		s.taskScrollOffsets[columnID] = selectedTaskIdx - visibleCount + 1
	}
}

// ClampTaskScroll keeps a column's scroll offset valid after tasks leave it
func (s *UIState) ClampTaskScroll(columnID string, taskCount int, visibleCount int) {
	maxOffset := max(0, taskCount-visibleCount)
	if s.taskScrollOffsets[columnID] > maxOffset {
		s.taskScrollOffsets[columnID] = maxOffset
	}
}
