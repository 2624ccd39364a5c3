// ABOUTME: Compact metric block widget for comparison displays
// ABOUTME: Draws an icon and title in the top border above a value and subtitle

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/inference-calculator/cli/internal/tui/icons"
)

// MetricBlockConfig holds configuration for a metric block
type MetricBlockConfig struct {
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
	ValueColor  lipgloss.Color
	Width       int
}

// DefaultMetricBlockConfig returns sensible defaults
func DefaultMetricBlockConfig() MetricBlockConfig {
	return MetricBlockConfig{
		Width:       30,
		BorderColor: lipgloss.Color("#6B7280"), // Muted gray
		TitleColor:  lipgloss.Color("#7C3AED"), // Purple
		ValueColor:  lipgloss.Color("#F9FAFB"), // Light
	}
}

// MetricBlock renders a bordered block with the title set into the top border
func MetricBlock(icon icons.Icon, title, value, subtitle string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = DefaultMetricBlockConfig().Width
	}
	innerWidth := config.Width - 4

	borderStyle := lipgloss.NewStyle().Foreground(config.BorderColor)
	titleStr := truncate(icon.String()+" "+title, innerWidth-1)
	fill := max(0, config.Width-5-lipgloss.Width(titleStr))
	topBorder := borderStyle.Render("┌─ ") +
		lipgloss.NewStyle().Foreground(config.TitleColor).Render(titleStr) +
		borderStyle.Render(" "+strings.Repeat("─", fill)+"┐")

	valueStyle := lipgloss.NewStyle().Foreground(config.ValueColor).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	line := func(s string, style lipgloss.Style) string {
		s = truncate(s, innerWidth)
		pad := strings.Repeat(" ", max(0, innerWidth-lipgloss.Width(s)))
		return borderStyle.Render("│ ") + style.Render(s) + pad + borderStyle.Render(" │")
	}

	bottomBorder := borderStyle.Render("└" + strings.Repeat("─", config.Width-2) + "┘")

	return strings.Join([]string{
		topBorder,
		line(value, valueStyle),
		line(subtitle, subtitleStyle),
		bottomBorder,
	}, "\n")
}

// truncate shortens a string to maxLen runes with ellipsis if needed
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:max(0, maxLen)])
	}
	return string(r[:maxLen-3]) + "..."
}
