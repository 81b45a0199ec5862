package models

// ============================================================================
// BOARD CONSTANTS
// ============================================================================

// DefaultDoneColumnTitle is the title of the column completed tasks are moved to
const DefaultDoneColumnTitle = "Done"

// ============================================================================
// VALIDATION LIMITS
// ============================================================================

// MaxTitleLength is the maximum number of characters in a task title
const MaxTitleLength = 255

// DueDateLayout is the layout used to read and print due dates
const DueDateLayout = "2006-01-02"
