// ABOUTME: Comparison aggregator shaping CPU and GPU metrics into chart rows
// ABOUTME: Row order is fixed so chart axes stay stable across requests

package services

import "github.com/markalston/inference-calculator/backend/models"

// rowDef declares one comparison row and the metric it reads
type rowDef struct {
	metric      string
	unit        string
	description string
	value       func(*models.MetricsResult) float64
}

var performanceRows = []rowDef{
	{"Daily Tokens", "tokens", "Total tokens processed per day",
		func(r *models.MetricsResult) float64 { return r.DailyTokens }},
	{"Power Efficiency", "tokens/watt", "Tokens processed per watt of power",
		func(r *models.MetricsResult) float64 { return r.TokensPerWatt }},
	{"Cost per 1M Tokens", "USD", "Cost to process 1 million tokens",
		func(r *models.MetricsResult) float64 { return r.CostPerMillionTokens }},
	{"Tokens per $1", "tokens", "Number of tokens processed per dollar",
		func(r *models.MetricsResult) float64 { return r.TokensPerDollar }},
}

var roiRows = []rowDef{
	{"FLOPS per $", "FLOPS/$", "Computational power per dollar invested",
		func(r *models.MetricsResult) float64 { return r.FLOPsPerDollar }},
	{"Profit Margin", "%", "Monthly profit as percentage of revenue",
		func(r *models.MetricsResult) float64 { return r.ProfitMarginPercent }},
	{"Monthly Profit", "USD", "Net profit per month after costs",
		func(r *models.MetricsResult) float64 { return r.MonthlyProfit }},
}

// BuildComparison returns the performance and cost rows, or an empty slice
// when either side is missing
func BuildComparison(cpu, gpu *models.MetricsResult) []models.ComparisonRow {
	return buildRows(performanceRows, cpu, gpu)
}

// BuildROIComparison returns the return-on-investment rows
func BuildROIComparison(cpu, gpu *models.MetricsResult) []models.ComparisonRow {
	return buildRows(roiRows, cpu, gpu)
}

func buildRows(defs []rowDef, cpu, gpu *models.MetricsResult) []models.ComparisonRow {
	if cpu == nil || gpu == nil {
		return []models.ComparisonRow{}
	}

	rows := make([]models.ComparisonRow, 0, len(defs))
	for _, d := range defs {
		rows = append(rows, models.ComparisonRow{
			Metric:      d.metric,
			CPU:         d.value(cpu),
			GPU:         d.value(gpu),
			Unit:        d.unit,
			Description: d.description,
		})
	}
	return rows
}
