package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/models"
)

// RenderTagChip renders a tag as a compact chip with its color as the background
func RenderTagChip(tag *models.Tag) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(tag.Color)).
		Foreground(lipgloss.Color(contrastText(tag.Color))).
		Padding(0, 1).
		Render(tag.Name)
}

// contrastText picks black or white text for a hex background
func contrastText(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return "#FFFFFF"
	}
	var rgb [3]int
	for i := range rgb {
		rgb[i] = hexByte(hex[1+i*2])<<4 | hexByte(hex[2+i*2])
	}
	// perceived luminance, ITU-R BT.601
	if rgb[0]*299+rgb[1]*587+rgb[2]*114 > 150_000 {
		return "#000000"
	}
	return "#FFFFFF"
}

func hexByte(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}
