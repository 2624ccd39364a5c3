// ABOUTME: Catalog command for infercalc CLI
// ABOUTME: Lists hardware models available for comparison, or shows one in detail

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
	"github.com/markalston/inference-calculator/cli/internal/client"
	"github.com/markalston/inference-calculator/cli/internal/format"
	"github.com/spf13/cobra"
)

var (
	catalogClass string
	catalogModel string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List available hardware",
	Long: `List the CPU and GPU models known to the backend.

Use --class to restrict the listing, and --class with --model to show the
full specification of one model.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCatalog(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVar(&catalogClass, "class", "", "Hardware class to list (cpu or gpu)")
	catalogCmd.Flags().StringVar(&catalogModel, "model", "", "Show a single model (requires --class)")
}

// runCatalog fetches the catalog listing and returns exit code
func runCatalog(ctx context.Context, w io.Writer) int {
	if catalogModel != "" && catalogClass == "" {
		fmt.Fprintln(w, "Error: --model requires --class")
		return 2
	}

	c := client.New(GetAPIURL())

	if catalogModel != "" {
		spec, err := c.HardwareSpec(ctx, catalogClass, catalogModel)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(spec, "", "  ")
			fmt.Fprintln(w, string(data))
		} else {
			fmt.Fprintln(w, formatSpecHuman(spec))
		}
		return 0
	}

	resp, err := c.Hardware(ctx, catalogClass)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatCatalogHuman(resp))
	}
	return 0
}

// formatCatalogHuman renders one table per class present in the listing
func formatCatalogHuman(resp *models.HardwareListResponse) string {
	var sections []string
	for _, group := range []struct {
		class models.HardwareClass
		specs []models.HardwareSpec
	}{
		{models.ClassCPU, resp.CPU},
		{models.ClassGPU, resp.GPU},
	} {
		if len(group.specs) == 0 {
			continue
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Model", "TDP", "Price", "Tokens/s", "Memory")
		for _, s := range group.specs {
			t.Row(s.Model,
				format.Number(s.ThermalDesignPowerWatts)+" W",
				format.Currency(s.PriceUSD),
				format.Number(s.BaselineTokensPerSecond),
				s.Memory)
		}
		sections = append(sections, group.class.Label()+"\n"+t.String())
	}
	if len(sections) == 0 {
		return "No hardware available"
	}
	return strings.Join(sections, "\n\n")
}

// formatSpecHuman renders every populated field of a single spec
func formatSpecHuman(s *models.HardwareSpec) string {
	lines := []string{
		fmt.Sprintf("Model:     %s (%s)", s.Model, s.Class.Label()),
		fmt.Sprintf("TDP:       %s W", format.Number(s.ThermalDesignPowerWatts)),
		fmt.Sprintf("Price:     %s", format.Currency(s.PriceUSD)),
		fmt.Sprintf("Tokens/s:  %s", format.Number(s.BaselineTokensPerSecond)),
	}
	if s.Cores > 0 {
		lines = append(lines, "Cores:     "+strconv.Itoa(s.Cores))
	}
	if s.BaseClockGHz > 0 || s.MaxClockGHz > 0 {
		lines = append(lines, fmt.Sprintf("Clock:     %.2f-%.2f GHz", s.BaseClockGHz, s.MaxClockGHz))
	}
	if s.TensorCores > 0 {
		lines = append(lines, "Tensor:    "+strconv.Itoa(s.TensorCores))
	}
	if s.Memory != "" {
		lines = append(lines, "Memory:    "+s.Memory)
	}
	if s.MemoryBandwidthGBps > 0 {
		lines = append(lines, fmt.Sprintf("Bandwidth: %s GB/s", format.Number(s.MemoryBandwidthGBps)))
	}
	return strings.Join(lines, "\n")
}
