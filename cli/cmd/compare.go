// ABOUTME: Compare command for infercalc CLI
// ABOUTME: Shows CPU vs GPU metrics, ROI rows and the break-even summary

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/markalston/inference-calculator/backend/models"
	"github.com/markalston/inference-calculator/cli/internal/client"
	"github.com/markalston/inference-calculator/cli/internal/format"
	"github.com/spf13/cobra"
)

// Selection flags shared by compare, breakeven and check
var (
	cpuModel       string
	gpuModel       string
	hoursPerDay    float64
	horizonMonths  int
	projectionMode string
)

const (
	defaultHours   = 12
	defaultHorizon = 24
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a CPU and a GPU",
	Long: `Compare one CPU and one GPU at a daily utilization.

Prints performance, cost and ROI metrics side by side, followed by the
break-even summary for the projection horizon.`,
	Example: `  infercalc compare --cpu "AMD EPYC 9654" --gpu "NVIDIA L4" --hours 12`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCompare(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	addHardwareFlags(compareCmd)
	addProjectionFlags(compareCmd)
}

func addHardwareFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cpuModel, "cpu", "", "CPU model name (see 'infercalc catalog')")
	cmd.Flags().StringVar(&gpuModel, "gpu", "", "GPU model name (see 'infercalc catalog')")
	cmd.Flags().Float64Var(&hoursPerDay, "hours", defaultHours, "Utilization in hours per day")
}

func addProjectionFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&horizonMonths, "months", defaultHorizon, "Projection horizon in months")
	cmd.Flags().StringVar(&projectionMode, "mode", string(models.ModeTotalCost), "Projection mode (cost or revenue)")
}

// buildCompareRequest validates the selection flags
func buildCompareRequest() (*models.CompareRequest, error) {
	if strings.TrimSpace(cpuModel) == "" || strings.TrimSpace(gpuModel) == "" {
		return nil, errors.New("--cpu and --gpu are required")
	}
	if math.IsNaN(hoursPerDay) || hoursPerDay <= 0 {
		return nil, fmt.Errorf("--hours must be positive, got %v", hoursPerDay)
	}
	if horizonMonths < 0 {
		return nil, fmt.Errorf("--months must not be negative, got %d", horizonMonths)
	}
	mode, err := models.ParseProjectionMode(projectionMode)
	if err != nil {
		return nil, fmt.Errorf("--mode: %w", err)
	}

	months := horizonMonths
	return &models.CompareRequest{
		CPUModel:         cpuModel,
		GPUModel:         gpuModel,
		UtilizationHours: hoursPerDay,
		HorizonMonths:    &months,
		Mode:             string(mode),
	}, nil
}

// fetchComparison validates flags and calls the backend, writing any error to w
func fetchComparison(ctx context.Context, w io.Writer) (*models.CompareResponse, bool) {
	req, err := buildCompareRequest()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return nil, false
	}

	resp, err := client.New(GetAPIURL()).Compare(ctx, req)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return nil, false
	}
	if resp.CPU == nil || resp.GPU == nil {
		fmt.Fprintln(w, "Error: backend returned an incomplete comparison")
		return nil, false
	}
	return resp, true
}

// runCompare executes the comparison and returns exit code
func runCompare(ctx context.Context, w io.Writer) int {
	resp, ok := fetchComparison(ctx, w)
	if !ok {
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatCompareHuman(resp))
	}
	return 0
}

// formatCompareHuman renders the comparison tables and summary
func formatCompareHuman(resp *models.CompareResponse) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "CPU: %s\nGPU: %s\nUtilization: %s h/day\n\n",
		resp.CPU.Spec.Model, resp.GPU.Spec.Model, format.Number(resp.CPU.UtilizationHours))

	sb.WriteString("Performance\n")
	sb.WriteString(rowsTable(resp.Comparison))
	sb.WriteString("\n\nReturn on Investment\n")
	sb.WriteString(rowsTable(resp.ROI))
	sb.WriteString("\n\n")
	sb.WriteString(formatSummary(resp.BreakEven, resp.Summary))

	return sb.String()
}

func rowsTable(rows []models.ComparisonRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Metric", "CPU", "GPU", "Unit")
	for _, r := range rows {
		t.Row(r.Metric, formatRowValue(r.Unit, r.CPU), formatRowValue(r.Unit, r.GPU), r.Unit)
	}
	return t.String()
}

// formatRowValue picks a formatter for a comparison row by its unit
func formatRowValue(unit string, v float64) string {
	switch unit {
	case "USD":
		return format.Currency(v)
	case "%":
		return format.Percent(v)
	case "FLOPS/$":
		return format.SI(v, "")
	case "tokens":
		return format.Large(v)
	}
	return format.Number(v)
}

// formatSummary describes where the projection crosses over or pays back
func formatSummary(p models.Projection, s models.BreakEvenSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Break-even (%s mode, %d months)\n", p.Mode, p.HorizonMonths)
	fmt.Fprintf(&sb, "  GPU overtakes CPU: %s\n", format.Month(s.CrossoverMonth))
	if p.Mode == models.ModeNetRevenue {
		fmt.Fprintf(&sb, "  CPU payback:       %s\n", format.Month(s.CPUPaybackMonth))
		fmt.Fprintf(&sb, "  GPU payback:       %s\n", format.Month(s.GPUPaybackMonth))
	}
	return strings.TrimRight(sb.String(), "\n")
}
