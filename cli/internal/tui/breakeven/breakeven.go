// ABOUTME: Break-even view plotting cumulative CPU and GPU series over time
// ABOUTME: Shows shared-scale sparklines, sampled months and crossover/payback months

package breakeven

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/inference-calculator/backend/models"
	"github.com/markalston/inference-calculator/cli/internal/format"
	"github.com/markalston/inference-calculator/cli/internal/tui/icons"
	"github.com/markalston/inference-calculator/cli/internal/tui/styles"
	"github.com/markalston/inference-calculator/cli/internal/tui/widgets"
)

// sampleRows is how many months the table shows besides month 0
const sampleRows = 6

// BreakEven displays a projection and its summary
type BreakEven struct {
	projection *models.Projection
	summary    models.BreakEvenSummary
	width      int
}

// New creates a break-even view; a nil projection renders a placeholder
func New(projection *models.Projection, summary models.BreakEvenSummary, width int) *BreakEven {
	return &BreakEven{projection: projection, summary: summary, width: width}
}

// SetWidth resizes the view
func (b *BreakEven) SetWidth(width int) {
	b.width = width
}

// View renders the projection
func (b *BreakEven) View() string {
	if b.projection == nil || len(b.projection.Points) == 0 {
		return "No projection data"
	}
	p := b.projection

	title := "Cumulative Cost"
	if p.Mode == models.ModeNetRevenue {
		title = "Net Revenue"
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(fmt.Sprintf("%s %s over %d months", icons.Chart.String(), title, p.HorizonMonths)))
	sb.WriteString("\n")

	cpu := make([]float64, len(p.Points))
	gpu := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		cpu[i] = pt.CPU
		gpu[i] = pt.GPU
	}
	lo, hi := widgets.Bounds(cpu, gpu)
	sparkWidth := b.width - 24
	if sparkWidth < 10 {
		sparkWidth = 10
	}
	last := p.Points[len(p.Points)-1]

	sb.WriteString(fmt.Sprintf("%s %s %s\n", styles.CPULabel.Render("CPU"),
		widgets.SparklineScaled(cpu, sparkWidth, styles.CPUColor, lo, hi), format.Currency(last.CPU)))
	sb.WriteString(fmt.Sprintf("%s %s %s\n\n", styles.GPULabel.Render("GPU"),
		widgets.SparklineScaled(gpu, sparkWidth, styles.GPUColor, lo, hi), format.Currency(last.GPU)))

	sb.WriteString(b.renderTable())
	sb.WriteString("\n")
	sb.WriteString(b.renderSummary())

	return lipgloss.NewStyle().Width(b.width).Render(sb.String())
}

func (b *BreakEven) renderTable() string {
	var sb strings.Builder
	header := fmt.Sprintf("%-7s %14s %14s %14s", "Month", "CPU", "GPU", "Difference")
	sb.WriteString(styles.Subtitle.Render(header))
	sb.WriteString("\n")
	for _, pt := range samplePoints(b.projection.Points, sampleRows) {
		sb.WriteString(fmt.Sprintf("%-7s %14s %14s %14s\n", strconv.Itoa(pt.Month),
			format.Currency(pt.CPU), format.Currency(pt.GPU), format.Currency(pt.Difference)))
	}
	return sb.String()
}

func (b *BreakEven) renderSummary() string {
	var lines []string
	lines = append(lines, monthLine("GPU overtakes CPU", b.summary.CrossoverMonth))
	if b.projection.Mode == models.ModeNetRevenue {
		lines = append(lines,
			monthLine("CPU payback", b.summary.CPUPaybackMonth),
			monthLine("GPU payback", b.summary.GPUPaybackMonth))
	}
	return strings.Join(lines, "\n")
}

func monthLine(label string, month *int) string {
	style := styles.StatusOK
	icon := icons.CheckOK
	if month == nil {
		style = styles.StatusWarning
		icon = icons.Critical
	}
	return fmt.Sprintf("%s %-18s %s", style.Render(icon.String()), label, style.Render(format.Month(month)))
}

// samplePoints returns month 0 plus n evenly spaced later months ending at the horizon
func samplePoints(points []models.BreakEvenPoint, n int) []models.BreakEvenPoint {
	if len(points) <= n+1 {
		return points
	}
	horizon := len(points) - 1
	out := []models.BreakEvenPoint{points[0]}
	prev := 0
	for i := 1; i <= n; i++ {
		idx := i * horizon / n
		if idx == prev {
			continue
		}
		out = append(out, points[idx])
		prev = idx
	}
	return out
}
