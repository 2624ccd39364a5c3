// ABOUTME: Metrics command for infercalc CLI
// ABOUTME: Shows every derived metric for a single hardware model

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/markalston/inference-calculator/backend/models"
	"github.com/markalston/inference-calculator/cli/internal/client"
	"github.com/markalston/inference-calculator/cli/internal/format"
	"github.com/spf13/cobra"
)

var (
	metricsClass string
	metricsModel string
)

var metricsCmd = &cobra.Command{
	Use:     "metrics",
	Short:   "Show metrics for one hardware model",
	Long:    `Compute performance, cost and business metrics for a single CPU or GPU.`,
	Example: `  infercalc metrics --class gpu --model "NVIDIA H100 80GB" --hours 24`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runMetrics(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
	metricsCmd.Flags().StringVar(&metricsClass, "class", "", "Hardware class (cpu or gpu)")
	metricsCmd.Flags().StringVar(&metricsModel, "model", "", "Model name (see 'infercalc catalog')")
	metricsCmd.Flags().Float64Var(&hoursPerDay, "hours", defaultHours, "Utilization in hours per day")
}

// runMetrics computes metrics for one model and returns exit code
func runMetrics(ctx context.Context, w io.Writer) int {
	if _, err := models.ParseHardwareClass(metricsClass); err != nil {
		fmt.Fprintf(w, "Error: --class: %v\n", err)
		return 2
	}
	if strings.TrimSpace(metricsModel) == "" {
		fmt.Fprintln(w, "Error: --model is required")
		return 2
	}

	result, err := client.New(GetAPIURL()).Metrics(ctx, &models.MetricsRequest{
		Class:            metricsClass,
		Model:            metricsModel,
		UtilizationHours: hoursPerDay,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if result == nil {
		fmt.Fprintln(w, "Error: no metrics returned (utilization must be above zero)")
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatMetricsHuman(result))
	}
	return 0
}

// formatMetricsHuman lists metrics grouped the way the comparison panels show them
func formatMetricsHuman(r *models.MetricsResult) string {
	return fmt.Sprintf(`%s (%s) at %s h/day

Performance
  Tokens/second:       %s
  Tokens/hour:         %s
  Daily tokens:        %s
  Monthly tokens:      %s
  Tokens/watt:         %s

Cost
  Daily power:         %s kWh (%s)
  Monthly power:       %s
  Hardware:            %s
  Cost per 1M tokens:  %s
  Hourly operating:    %s
  Power cost per hour: %s
  Tokens per $1:       %s

Business
  Monthly revenue:     %s
  Monthly profit:      %s
  Profit margin:       %s
  FLOPS:               %s
  FLOPS per $:         %s
  Break-even tokens:   %s
  Break-even days:     %s`,
		r.Spec.Model, r.Spec.Class.Label(), format.Number(r.UtilizationHours),
		format.Number(r.TokensPerSecond),
		format.Large(r.TokensPerHour),
		format.Large(r.DailyTokens),
		format.Large(r.MonthlyTokens),
		format.Number(r.TokensPerWatt),
		format.Number(r.DailyPowerKWh), format.Currency(r.DailyPowerCost),
		format.Currency(r.MonthlyPowerCost),
		format.Currency(r.HardwareCostUSD),
		format.Currency(r.CostPerMillionTokens),
		format.Currency(r.HourlyOperatingCost),
		format.Currency(r.PowerCostPerHour),
		format.Large(r.TokensPerDollar),
		format.Currency(r.MonthlyRevenue),
		format.Currency(r.MonthlyProfit),
		format.Percent(r.ProfitMarginPercent),
		format.SI(r.FLOPsPerSecond, "FLOPS"),
		format.SI(r.FLOPsPerDollar, "FLOPS/$"),
		format.Large(r.TokensToBreakEven),
		format.Number(r.DaysToBreakEven),
	)
}
