// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
//
// Parameters:
//   - content: the rendered content to center
//   - screenWidth: the width of the screen
//   - screenHeight: the height of the screen
//
// Returns:
//   - A layer positioned at the center of the screen, or nil if content is empty
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// PopupDimensions returns the size of a large popup (editor, detail view)
// for the given screen, clamped to sensible bounds and never larger than the screen.
func PopupDimensions(screenWidth, screenHeight int) (int, int) {
	width := screenWidth * PopupWidthNumerator / PopupWidthDivisor
	width = min(max(width, PopupMinWidth), PopupMaxWidth, screenWidth)

	height := screenHeight * PopupHeightNumerator / PopupHeightDivisor
	height = min(max(height, PopupMinHeight), screenHeight)

	return max(width, 0), max(height, 0)
}
