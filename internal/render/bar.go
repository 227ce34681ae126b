package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Bar draws a horizontal meter of the given width for percent in [0,1],
// followed by the rounded percentage.
func Bar(percent float64, width int) string {
	if width < 4 {
		width = 4
	}

	filled := int(float64(width) * percent)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled

	color := Error
	switch {
	case percent >= 0.8:
		color = Success
	case percent >= 0.6:
		color = Accent
	}

	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("░", empty))
	pct := Hint.Render(fmt.Sprintf(" %3.0f%%", percent*100))
	return filledStr + emptyStr + pct
}
