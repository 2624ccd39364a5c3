// ABOUTME: Shared fixtures for command tests
// ABOUTME: Canned backend responses and flag reset helpers

package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/markalston/inference-calculator/backend/models"
)

const (
	testCPU = "Intel Xeon Platinum 8480+"
	testGPU = "NVIDIA A100 80GB"
)

func intPtr(v int) *int { return &v }

// sampleComparison mirrors a 12 h/day revenue-mode comparison over 3 months
func sampleComparison() models.CompareResponse {
	return models.CompareResponse{
		CPU: &models.MetricsResult{
			UtilizationHours:     12,
			DailyTokens:          1296000,
			CostPerMillionTokens: 15.11,
			MonthlyProfit:        3873,
			Spec:                 models.SpecReference{Class: models.ClassCPU, Model: testCPU, PriceUSD: 8999},
		},
		GPU: &models.MetricsResult{
			UtilizationHours:     12,
			DailyTokens:          4320000,
			CostPerMillionTokens: 6.4,
			MonthlyProfit:        12943,
			Spec:                 models.SpecReference{Class: models.ClassGPU, Model: testGPU, PriceUSD: 10000},
		},
		Comparison: []models.ComparisonRow{
			{Metric: "Daily Tokens", CPU: 1296000, GPU: 4320000, Unit: "tokens"},
			{Metric: "Cost per 1M Tokens", CPU: 15.11, GPU: 6.4, Unit: "USD"},
		},
		ROI: []models.ComparisonRow{
			{Metric: "Profit Margin", CPU: 99.6, GPU: 99.9, Unit: "%"},
		},
		BreakEven: models.Projection{
			Mode:             models.ModeNetRevenue,
			HorizonMonths:    3,
			UtilizationHours: 12,
			Points: []models.BreakEvenPoint{
				{Month: 0, CPU: -8999, GPU: -10000, Difference: -1001},
				{Month: 1, CPU: -5126, GPU: 2943, Difference: 8069},
				{Month: 2, CPU: -1253, GPU: 15886, Difference: 17139},
				{Month: 3, CPU: 2620, GPU: 28829, Difference: 26209},
			},
		},
		Summary: models.BreakEvenSummary{
			CrossoverMonth:  intPtr(1),
			CPUPaybackMonth: intPtr(3),
			GPUPaybackMonth: intPtr(1),
		},
	}
}

// compareServer answers POST /api/v1/compare with resp and records the request
func compareServer(t *testing.T, resp models.CompareResponse, got *models.CompareRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/compare" {
			t.Errorf("expected POST /api/v1/compare, got %s %s", r.Method, r.URL.Path)
		}
		if got != nil {
			if err := json.NewDecoder(r.Body).Decode(got); err != nil {
				t.Errorf("failed to decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server
}

// useSelection points commands at server with a CPU/GPU selection and
// restores every shared flag afterwards
func useSelection(t *testing.T, server *httptest.Server) {
	t.Helper()
	apiURL = server.URL
	cpuModel = testCPU
	gpuModel = testGPU
	hoursPerDay = defaultHours
	horizonMonths = defaultHorizon
	projectionMode = string(models.ModeTotalCost)
	t.Cleanup(func() {
		apiURL = ""
		cpuModel = ""
		gpuModel = ""
		hoursPerDay = defaultHours
		horizonMonths = defaultHorizon
		projectionMode = string(models.ModeTotalCost)
		jsonOutput = false
	})
}
