// ABOUTME: Tests for comparison view component
// ABOUTME: Validates CPU vs GPU metric display

package comparison

import (
	"strings"
	"testing"

	"github.com/markalston/inference-calculator/backend/models"
)

func sampleResult() *models.CompareResponse {
	return &models.CompareResponse{
		CPU: &models.MetricsResult{
			UtilizationHours:     12,
			PowerCostPerHour:     0.042,
			CostPerToken:         0.00000039,
			CostPerMillionTokens: 15.11,
			Spec:                 models.SpecReference{Class: models.ClassCPU, Model: "Intel Xeon Platinum 8480+", TDPWatts: 350, PriceUSD: 8999},
		},
		GPU: &models.MetricsResult{
			UtilizationHours:     12,
			CostPerMillionTokens: 6.40,
			Spec:                 models.SpecReference{Class: models.ClassGPU, Model: "NVIDIA A100 80GB", TDPWatts: 400, PriceUSD: 10000, Memory: "80GB HBM2e"},
		},
		Comparison: []models.ComparisonRow{
			{Metric: "Daily Tokens", CPU: 1296000, GPU: 4320000, Unit: "tokens"},
			{Metric: "Cost per 1M Tokens", CPU: 15.11, GPU: 6.40, Unit: "USD"},
		},
		ROI: []models.ComparisonRow{
			{Metric: "Profit Margin", CPU: 99.6, GPU: 99.9, Unit: "%"},
		},
	}
}

func TestComparisonView(t *testing.T) {
	c := New(sampleResult(), 100)
	view := c.View()

	for _, want := range []string{
		"CPU vs GPU at 12 h/day",
		"Intel Xeon Platinum 8480+",
		"NVIDIA A100 80GB",
		"Performance",
		"Daily Tokens",
		"4.3M",
		"$15.11",
		"99.9%",
		"Token Costs",
		"$0.00000039",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestComparisonViewNilResult(t *testing.T) {
	for name, result := range map[string]*models.CompareResponse{
		"nil":         nil,
		"missing gpu": {CPU: &models.MetricsResult{}},
	} {
		c := New(result, 80)
		if view := c.View(); !strings.Contains(view, "No comparison data") {
			t.Errorf("%s: expected 'No comparison data', got %q", name, view)
		}
	}
}

func TestComparisonViewNarrowWidth(t *testing.T) {
	c := New(sampleResult(), 20)

	if view := c.View(); !strings.Contains(view, "Daily Tokens") {
		t.Error("expected narrow view to still render rows")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		unit string
		v    float64
		want string
	}{
		{"USD", -1250.5, "-$1,250.50"},
		{"%", 12.34, "12.3%"},
		{"tokens", 8640000, "8.6M"},
		{"FLOPS/$", 1.4e9, "1.4 GFLOPS/$"},
		{"tokens/watt", 1234.5, "1,234.5"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.unit, tt.v); got != tt.want {
			t.Errorf("FormatValue(%q, %v): expected %q, got %q", tt.unit, tt.v, tt.want, got)
		}
	}
}
