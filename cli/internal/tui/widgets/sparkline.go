// ABOUTME: Sparkline widget renders mini trend charts using block characters
// ABOUTME: Used for break-even projections where values may be negative

package widgets

import (
	"github.com/charmbracelet/lipgloss"
)

// SparklineBlocks are the Unicode block characters for different heights
var SparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders values (oldest first) as at most width block characters.
// Series longer than width are sampled; shorter series are drawn as-is.
func Sparkline(values []float64, width int, color lipgloss.Color) string {
	lo, hi := Bounds(values)
	return SparklineScaled(values, width, color, lo, hi)
}

// SparklineScaled is Sparkline with an explicit scale, so that several
// series drawn against the same bounds stay visually comparable
func SparklineScaled(values []float64, width int, color lipgloss.Color, lo, hi float64) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	sampled := sampleValues(values, width)
	result := make([]rune, len(sampled))
	for i, v := range sampled {
		result[i] = valueToBlock(v, lo, hi)
	}

	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Foreground(color)
	}
	return style.Render(string(result))
}

// Bounds returns the minimum and maximum across every given series
func Bounds(series ...[]float64) (lo, hi float64) {
	first := true
	for _, values := range series {
		for _, v := range values {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

// sampleValues picks width evenly spaced values when there are too many
func sampleValues(values []float64, width int) []float64 {
	if len(values) <= width {
		return values
	}

	result := make([]float64, width)
	ratio := float64(len(values)-1) / float64(width-1)
	if width == 1 {
		ratio = 0
	}
	for i := 0; i < width; i++ {
		idx := int(float64(i)*ratio + 0.5)
		if idx >= len(values) {
			idx = len(values) - 1
		}
		result[i] = values[idx]
	}
	return result
}

// valueToBlock converts a value to a block character based on its position in the range
func valueToBlock(value, lo, hi float64) rune {
	if hi == lo {
		return SparklineBlocks[len(SparklineBlocks)/2]
	}

	normalized := (value - lo) / (hi - lo)
	idx := int(normalized * float64(len(SparklineBlocks)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(SparklineBlocks) {
		idx = len(SparklineBlocks) - 1
	}
	return SparklineBlocks[idx]
}
