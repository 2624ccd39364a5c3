// ABOUTME: Comparison view showing CPU and GPU metrics side by side
// ABOUTME: Renders hardware blocks, bar rows for each metric and token cost details

package comparison

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/inference-calculator/backend/models"
	"github.com/markalston/inference-calculator/cli/internal/format"
	"github.com/markalston/inference-calculator/cli/internal/tui/icons"
	"github.com/markalston/inference-calculator/cli/internal/tui/styles"
	"github.com/markalston/inference-calculator/cli/internal/tui/widgets"
)

const (
	labelWidth  = 20
	valueWidth  = 12
	minBarWidth = 10
)

// Comparison displays a compare response
type Comparison struct {
	result *models.CompareResponse
	width  int
}

// New creates a new comparison view
func New(result *models.CompareResponse, width int) *Comparison {
	return &Comparison{
		result: result,
		width:  width,
	}
}

// SetWidth resizes the view
func (c *Comparison) SetWidth(width int) {
	c.width = width
}

// View renders the comparison
func (c *Comparison) View() string {
	if c.result == nil || c.result.CPU == nil || c.result.GPU == nil {
		return "No comparison data"
	}

	var sb strings.Builder

	sb.WriteString(styles.Title.Render(fmt.Sprintf("CPU vs GPU at %s h/day", format.Number(c.result.CPU.UtilizationHours))))
	sb.WriteString("\n")
	sb.WriteString(c.renderHardware())
	sb.WriteString("\n\n")

	sb.WriteString(styles.Subtitle.Render("Performance"))
	sb.WriteString("\n")
	sb.WriteString(c.renderRows(c.result.Comparison))
	sb.WriteString("\n")

	sb.WriteString(styles.Subtitle.Render("Return on Investment"))
	sb.WriteString("\n")
	sb.WriteString(c.renderRows(c.result.ROI))
	sb.WriteString("\n")

	sb.WriteString(styles.Subtitle.Render("Token Costs"))
	sb.WriteString("\n")
	sb.WriteString(c.renderTokenCosts())

	return lipgloss.NewStyle().Width(c.width).Render(sb.String())
}

// renderHardware places one metric block per class side by side
func (c *Comparison) renderHardware() string {
	blockWidth := (c.width - 2) / 2
	if blockWidth < 24 {
		blockWidth = 24
	}

	block := func(icon icons.Icon, r *models.MetricsResult) string {
		config := widgets.DefaultMetricBlockConfig()
		config.Width = blockWidth
		config.TitleColor = styles.ClassColor(string(r.Spec.Class))
		subtitle := fmt.Sprintf("%s · %s W", format.Currency(r.Spec.PriceUSD), format.Number(r.Spec.TDPWatts))
		if r.Spec.Memory != "" {
			subtitle += " · " + r.Spec.Memory
		}
		return widgets.MetricBlock(icon, r.Spec.Class.Label(), r.Spec.Model, subtitle, config)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		block(icons.CPU, c.result.CPU), "  ", block(icons.GPU, c.result.GPU))
}

// renderRows draws a CPU bar and a GPU bar per row on a shared scale
func (c *Comparison) renderRows(rows []models.ComparisonRow) string {
	barWidth := c.width - labelWidth - valueWidth - 6
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	var sb strings.Builder
	for _, row := range rows {
		scale := widgets.Scale(row.CPU, row.GPU)
		label := fmt.Sprintf("%-*s", labelWidth, row.Metric)
		blank := strings.Repeat(" ", labelWidth)

		sb.WriteString(fmt.Sprintf("%s %s %s %s\n", label, styles.CPULabel.Render("CPU"),
			widgets.Bar(row.CPU, scale, barWidth, styles.CPUColor), FormatValue(row.Unit, row.CPU)))
		sb.WriteString(fmt.Sprintf("%s %s %s %s\n", blank, styles.GPULabel.Render("GPU"),
			widgets.Bar(row.GPU, scale, barWidth, styles.GPUColor), FormatValue(row.Unit, row.GPU)))
	}
	return sb.String()
}

func (c *Comparison) renderTokenCosts() string {
	var sb strings.Builder
	for _, r := range []*models.MetricsResult{c.result.CPU, c.result.GPU} {
		sb.WriteString(fmt.Sprintf("%s  power/hour %s  cost/token %s  per 1M %s  %s %s/month\n",
			styles.ValueStyle.Render(r.Spec.Class.Label()),
			format.Currency(r.PowerCostPerHour),
			formatSmallCurrency(r.CostPerToken),
			format.Currency(r.CostPerMillionTokens),
			icons.Power.String(),
			format.Currency(r.MonthlyPowerCost)))
	}
	return sb.String()
}

// FormatValue renders a comparison row value according to its unit
func FormatValue(unit string, v float64) string {
	switch unit {
	case "USD":
		return format.Currency(v)
	case "%":
		return format.Percent(v)
	case "FLOPS/$":
		return format.SI(v, "FLOPS/$")
	case "tokens":
		return format.Large(v)
	}
	return format.Number(v)
}

// formatSmallCurrency keeps significant digits for sub-cent amounts
func formatSmallCurrency(v float64) string {
	if v != 0 && v < 0.01 && v > -0.01 {
		return fmt.Sprintf("$%.8f", v)
	}
	return format.Currency(v)
}
