// ABOUTME: Check command for infercalc CLI
// ABOUTME: Validates cost and payback budgets for CI/CD pipelines

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/markalston/inference-calculator/backend/models"
	"github.com/spf13/cobra"
)

var (
	maxCostPerMillion  float64
	maxBreakevenMonths int
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check hardware against cost budgets",
	Long: `Check a CPU and GPU selection against budgets and exit non-zero if any are exceeded.

Checks:
  --max-cost-per-million   cost per 1M tokens for each class must not exceed this
  --max-breakeven-months   each class must pay back (net revenue >= 0) within this many months

Exit codes:
  0 - All checks passed
  1 - One or more budgets exceeded
  2 - Error (connectivity, unknown model, invalid input)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCheck(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addHardwareFlags(checkCmd)
	checkCmd.Flags().Float64Var(&maxCostPerMillion, "max-cost-per-million", 0, "Maximum cost per 1M tokens in USD (0 disables)")
	checkCmd.Flags().IntVar(&maxBreakevenMonths, "max-breakeven-months", 0, "Maximum months to pay back the hardware (0 disables)")
}

// checkResult represents the result of a single budget check
type checkResult struct {
	name      string
	unit      string
	value     float64
	threshold float64
	passed    bool
	reached   bool
}

// runCheck executes the budget checks and returns exit code
func runCheck(ctx context.Context, w io.Writer) int {
	if err := validateThresholds(maxCostPerMillion, maxBreakevenMonths); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	// Payback is only defined for the net-revenue projection
	horizonMonths = maxBreakevenMonths
	projectionMode = string(models.ModeNetRevenue)

	resp, ok := fetchComparison(ctx, w)
	if !ok {
		return 2
	}

	results := performChecks(resp)

	if IsJSONOutput() {
		fmt.Fprintln(w, formatCheckJSON(results))
	} else {
		fmt.Fprintln(w, formatCheckHuman(results))
	}

	_, failed := countResults(results)
	if failed > 0 {
		return 1
	}
	return 0
}

// validateThresholds ensures at least one budget is set and none are negative
func validateThresholds(costPerMillion float64, months int) error {
	if costPerMillion < 0 {
		return fmt.Errorf("--max-cost-per-million must not be negative")
	}
	if months < 0 {
		return fmt.Errorf("--max-breakeven-months must not be negative")
	}
	if costPerMillion == 0 && months == 0 {
		return fmt.Errorf("set --max-cost-per-million and/or --max-breakeven-months")
	}
	return nil
}

// performChecks runs every enabled budget check against both classes
func performChecks(resp *models.CompareResponse) []checkResult {
	var results []checkResult

	if maxCostPerMillion > 0 {
		for _, r := range []*models.MetricsResult{resp.CPU, resp.GPU} {
			results = append(results, checkResult{
				name:      r.Spec.Class.Label() + " cost per 1M tokens",
				unit:      "$",
				value:     r.CostPerMillionTokens,
				threshold: maxCostPerMillion,
				passed:    r.CostPerMillionTokens <= maxCostPerMillion,
				reached:   true,
			})
		}
	}

	if maxBreakevenMonths > 0 {
		for _, payback := range []struct {
			class models.HardwareClass
			month *int
		}{
			{models.ClassCPU, resp.Summary.CPUPaybackMonth},
			{models.ClassGPU, resp.Summary.GPUPaybackMonth},
		} {
			r := checkResult{
				name:      payback.class.Label() + " payback",
				unit:      "months",
				threshold: float64(maxBreakevenMonths),
			}
			if payback.month != nil {
				r.value = float64(*payback.month)
				r.reached = true
				r.passed = *payback.month <= maxBreakevenMonths
			}
			results = append(results, r)
		}
	}

	return results
}

// countResults returns the count of passed and failed checks
func countResults(results []checkResult) (passed, failed int) {
	for _, r := range results {
		if r.passed {
			passed++
		} else {
			failed++
		}
	}
	return
}

// formatCheckHuman formats check results for human readability
func formatCheckHuman(results []checkResult) string {
	var output string

	for _, r := range results {
		symbol := "✓"
		if !r.passed {
			symbol = "✗"
		}
		output += fmt.Sprintf("%s %s: %s (threshold: %s)\n",
			symbol, r.name, r.formatValue(), r.formatAmount(r.threshold))
	}

	passed, failed := countResults(results)
	if failed > 0 {
		output += fmt.Sprintf("\nFAILED: %d check(s) exceeded budget", failed)
	} else {
		output += fmt.Sprintf("\nPASSED: All %d check(s) within budget", passed)
	}

	return output
}

func (r checkResult) formatValue() string {
	if !r.reached {
		return "not reached"
	}
	return r.formatAmount(r.value)
}

func (r checkResult) formatAmount(v float64) string {
	if r.unit == "$" {
		return fmt.Sprintf("$%.2f", v)
	}
	return fmt.Sprintf("%.0f %s", v, r.unit)
}

// formatCheckJSON formats check results as JSON
func formatCheckJSON(results []checkResult) string {
	_, failed := countResults(results)

	checks := make([]map[string]interface{}, len(results))
	for i, r := range results {
		var value interface{}
		if r.reached {
			value = r.value
		}
		checks[i] = map[string]interface{}{
			"name":      r.name,
			"value":     value,
			"threshold": r.threshold,
			"unit":      r.unit,
			"passed":    r.passed,
		}
	}

	status := "passed"
	if failed > 0 {
		status = "failed"
	}

	output := map[string]interface{}{
		"status": status,
		"checks": checks,
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
