package components

const (
	ColumnContentWidth = 40 // width of a column including padding
	TaskCardWidth      = 36 // width of a task card inside its border
	TaskCardHeight     = 6  // fixed height of a task card including borders
	taskTitleMaxLength = 30 // maximum display length for task title before truncation
	maxTagChips        = 3  // tags shown on a card before "+N"

	// columnOverhead is border + padding (3), header (1) and top indicator (1)
	columnOverhead = 5
)

// VisibleTaskCount returns how many cards fit into a column of the given total height
func VisibleTaskCount(columnHeight int) int {
	return max((columnHeight-columnOverhead)/TaskCardHeight, 1)
}
