// ABOUTME: Breakeven command for infercalc CLI
// ABOUTME: Prints the month-by-month projection with a sparkline per class

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/markalston/inference-calculator/backend/models"
	"github.com/markalston/inference-calculator/cli/internal/format"
	"github.com/markalston/inference-calculator/cli/internal/tui/styles"
	"github.com/markalston/inference-calculator/cli/internal/tui/widgets"
	"github.com/spf13/cobra"
)

// maxTableRows caps the projection table; longer horizons are sampled
const maxTableRows = 24

const sparklineWidth = 40

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Project cumulative cost or revenue over time",
	Long: `Project cumulative cost (--mode cost) or net revenue (--mode revenue)
for a CPU and a GPU month by month, starting at month 0 with the purchase
price.`,
	Example: `  infercalc breakeven --cpu "AMD EPYC 9654" --gpu "NVIDIA L4" --months 36 --mode revenue`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runBreakeven(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(breakevenCmd)
	addHardwareFlags(breakevenCmd)
	addProjectionFlags(breakevenCmd)
}

// runBreakeven fetches the projection and returns exit code
func runBreakeven(ctx context.Context, w io.Writer) int {
	resp, ok := fetchComparison(ctx, w)
	if !ok {
		return 2
	}

	if IsJSONOutput() {
		output := map[string]interface{}{
			"cpu_model":  resp.CPU.Spec.Model,
			"gpu_model":  resp.GPU.Spec.Model,
			"break_even": resp.BreakEven,
			"summary":    resp.Summary,
		}
		data, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatBreakevenHuman(resp))
	}
	return 0
}

// formatBreakevenHuman renders sparklines, a sampled table and the summary
func formatBreakevenHuman(resp *models.CompareResponse) string {
	p := resp.BreakEven
	if len(p.Points) == 0 {
		return "No projection data"
	}

	cpuSeries := make([]float64, len(p.Points))
	gpuSeries := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		cpuSeries[i] = pt.CPU
		gpuSeries[i] = pt.GPU
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "CPU %-30s %s\n", resp.CPU.Spec.Model, widgets.Sparkline(cpuSeries, sparklineWidth, styles.CPUColor))
	fmt.Fprintf(&sb, "GPU %-30s %s\n\n", resp.GPU.Spec.Model, widgets.Sparkline(gpuSeries, sparklineWidth, styles.GPUColor))

	label := "Cumulative Cost"
	if p.Mode == models.ModeNetRevenue {
		label = "Net Revenue"
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Month", "CPU "+label, "GPU "+label, "Difference")
	for _, pt := range samplePoints(p.Points, maxTableRows) {
		t.Row(strconv.Itoa(pt.Month), format.Currency(pt.CPU), format.Currency(pt.GPU), format.Currency(pt.Difference))
	}
	sb.WriteString(t.String())
	sb.WriteString("\n\n")
	sb.WriteString(formatSummary(p, resp.Summary))

	return sb.String()
}

// samplePoints keeps at most limit+1 evenly spaced points, always including
// the first and last month
func samplePoints(points []models.BreakEvenPoint, limit int) []models.BreakEvenPoint {
	if limit <= 0 || len(points) <= limit+1 {
		return points
	}
	step := (len(points) - 1 + limit - 1) / limit
	var out []models.BreakEvenPoint
	for i := 0; i < len(points); i += step {
		out = append(out, points[i])
	}
	if last := points[len(points)-1]; out[len(out)-1].Month != last.Month {
		out = append(out, last)
	}
	return out
}
