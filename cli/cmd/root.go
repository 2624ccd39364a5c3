// ABOUTME: Root command for infercalc CLI
// ABOUTME: Handles global flags and launches the TUI when no subcommand is given

package cmd

import (
	"os"

	"github.com/markalston/inference-calculator/cli/internal/client"
	"github.com/markalston/inference-calculator/cli/internal/tui"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:8080"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "infercalc",
	Short: "CPU vs GPU inference hardware calculator",
	Long: `infercalc compares CPU and GPU hardware for LLM inference workloads.

Run without a subcommand to open the interactive calculator, or use the
subcommands for scripted comparisons and CI/CD budget checks.

Environment Variables:
  INFERCALC_API_URL    Backend API URL (default: http://localhost:8080)
  INFERCALC_DEBUG_LOG  Write TUI debug output to this file`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(client.New(GetAPIURL()), os.Getenv("INFERCALC_DEBUG_LOG"))
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides INFERCALC_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("INFERCALC_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
