package services

import (
	"testing"

	"github.com/markalston/inference-calculator/backend/models"
)

func scenarioResults(t *testing.T) (cpu, gpu *models.MetricsResult) {
	t.Helper()
	e := testEngine(t)
	cpu, err := e.Compute(models.ClassCPU, cpuA, 24)
	if err != nil {
		t.Fatalf("Compute cpu failed: %v", err)
	}
	gpu, err = e.Compute(models.ClassGPU, gpuB, 24)
	if err != nil {
		t.Fatalf("Compute gpu failed: %v", err)
	}
	return cpu, gpu
}

func TestBuildComparison_RowOrder(t *testing.T) {
	cpu, gpu := scenarioResults(t)
	rows := BuildComparison(cpu, gpu)

	want := []struct{ metric, unit, description string }{
		{"Daily Tokens", "tokens", "Total tokens processed per day"},
		{"Power Efficiency", "tokens/watt", "Tokens processed per watt of power"},
		{"Cost per 1M Tokens", "USD", "Cost to process 1 million tokens"},
		{"Tokens per $1", "tokens", "Number of tokens processed per dollar"},
	}
	if len(rows) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(rows))
	}
	for i, w := range want {
		if rows[i].Metric != w.metric || rows[i].Unit != w.unit || rows[i].Description != w.description {
			t.Errorf("Row %d: expected %+v, got %+v", i, w, rows[i])
		}
	}

	if rows[0].CPU != 2592000 || rows[0].GPU != 8640000 {
		t.Errorf("Expected daily tokens 2592000/8640000, got %v/%v", rows[0].CPU, rows[0].GPU)
	}
	if !approxEqual(rows[1].GPU, 250) {
		t.Errorf("Expected GPU power efficiency 250, got %v", rows[1].GPU)
	}
	if rows[2].CPU != cpu.CostPerMillionTokens || rows[3].GPU != gpu.TokensPerDollar {
		t.Errorf("Expected rows to carry unformatted metric values")
	}
}

func TestBuildROIComparison_RowOrder(t *testing.T) {
	cpu, gpu := scenarioResults(t)
	rows := BuildROIComparison(cpu, gpu)

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].Metric != "FLOPS per $" || rows[0].Unit != "FLOPS/$" {
		t.Errorf("Expected FLOPS per $ first, got %+v", rows[0])
	}
	if rows[1].Metric != "Profit Margin" || rows[1].Unit != "%" {
		t.Errorf("Expected Profit Margin second, got %+v", rows[1])
	}
	if rows[2].Metric != "Monthly Profit" || rows[2].GPU != gpu.MonthlyProfit {
		t.Errorf("Expected Monthly Profit third with GPU value %v, got %+v", gpu.MonthlyProfit, rows[2])
	}
}

func TestBuildComparison_NilInput(t *testing.T) {
	cpu, gpu := scenarioResults(t)

	for name, rows := range map[string][]models.ComparisonRow{
		"nil cpu":  BuildComparison(nil, gpu),
		"nil gpu":  BuildComparison(cpu, nil),
		"nil both": BuildComparison(nil, nil),
		"roi nil":  BuildROIComparison(nil, gpu),
	} {
		if rows == nil || len(rows) != 0 {
			t.Errorf("%s: expected empty non-nil slice, got %v", name, rows)
		}
	}
}
