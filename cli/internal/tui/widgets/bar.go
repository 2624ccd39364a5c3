// ABOUTME: Horizontal bar widget for side-by-side metric comparisons
// ABOUTME: Scales bars against a shared maximum so CPU and GPU rows line up

package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EmptyColor is the color of the unfilled part of a bar
var EmptyColor = lipgloss.Color("#374151")

// Bar renders |value| as a fraction of scale across width cells.
// Non-finite inputs and a non-positive scale render an empty bar.
func Bar(value, scale float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if scale > 0 && !math.IsNaN(value) && !math.IsInf(value, 0) {
		filled = int(math.Round(math.Abs(value) / scale * float64(width)))
		// Anything non-zero stays visible
		if filled == 0 && value != 0 {
			filled = 1
		}
	}
	if filled > width {
		filled = width
	}

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(EmptyColor).Render(strings.Repeat("░", width-filled))
}

// Scale returns the largest absolute finite value, used as a shared bar scale
func Scale(values ...float64) float64 {
	var scale float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		scale = math.Max(scale, math.Abs(v))
	}
	return scale
}
