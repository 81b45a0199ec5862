package layers

const (
	PopupWidthNumerator  = 3 // 3/4 = 75% of screen width
	PopupWidthDivisor    = 4
	PopupHeightNumerator = 4 // 4/5 = 80% of screen height
	PopupHeightDivisor   = 5

	PopupMinWidth  = 50
	PopupMaxWidth  = 110
	PopupMinHeight = 16

	ConfirmWidth = 50
)
