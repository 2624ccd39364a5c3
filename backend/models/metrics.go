// ABOUTME: Derived inference metrics and the pricing assumptions behind them
// ABOUTME: MetricsResult is computed fresh per request and never mutated

package models

import (
	"fmt"
	"math"
)

// Pricing holds the policy constants that every derived metric depends on.
// None of these come from the hardware specs; they are illustrative
// assumptions and are exposed as configuration.
type Pricing struct {
	PowerCostPerKWh      float64 `json:"power_cost_per_kwh"`     // USD per kWh
	AmortizationMonths   float64 `json:"amortization_months"`    // straight-line hardware amortization
	MarketPricePerToken  float64 `json:"market_price_per_token"` // USD revenue per generated token
	ReferenceModelParams float64 `json:"reference_model_params"` // parameter count used for FLOPs estimates
}

// DefaultPricing returns the stock assumptions: $0.12/kWh, 24-month
// amortization, $0.0001 per token, 7B-parameter reference model.
func DefaultPricing() Pricing {
	return Pricing{
		PowerCostPerKWh:      0.12,
		AmortizationMonths:   24,
		MarketPricePerToken:  0.0001,
		ReferenceModelParams: 7e9,
	}
}

// FLOPsPerToken estimates forward-pass FLOPs per token as 2 x parameters.
// This is a rough rule of thumb, not a measured value.
func (p Pricing) FLOPsPerToken() float64 {
	return 2 * p.ReferenceModelParams
}

// Validate rejects negative or non-finite assumptions and a zero amortization period
func (p Pricing) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"power_cost_per_kwh", p.PowerCostPerKWh},
		{"amortization_months", p.AmortizationMonths},
		{"market_price_per_token", p.MarketPricePerToken},
		{"reference_model_params", p.ReferenceModelParams},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%s must be a non-negative number, got %v", f.name, f.value)
		}
	}
	if p.AmortizationMonths == 0 {
		return fmt.Errorf("amortization_months must be greater than zero")
	}
	return nil
}

// SpecReference is the subset of the originating spec kept for display
type SpecReference struct {
	Class    HardwareClass `json:"class"`
	Model    string        `json:"model"`
	TDPWatts float64       `json:"tdp_watts"`
	PriceUSD float64       `json:"price_usd"`
	Memory   string        `json:"memory,omitempty"`
}

// MetricsResult is the full set of derived metrics for one hardware selection.
// Values are unrounded; rounding is left to the presentation layer.
type MetricsResult struct {
	UtilizationHours float64 `json:"utilization_hours"`

	// Performance
	TokensPerSecond float64 `json:"tokens_per_second"`
	TokensPerHour   float64 `json:"tokens_per_hour"`
	DailyTokens     float64 `json:"daily_tokens"`
	MonthlyTokens   float64 `json:"monthly_tokens"`
	TokensPerWatt   float64 `json:"tokens_per_watt"`

	// Cost
	DailyPowerKWh        float64 `json:"daily_power_kwh"`
	DailyPowerCost       float64 `json:"daily_power_cost"`
	MonthlyPowerCost     float64 `json:"monthly_power_cost"`
	HardwareCostUSD      float64 `json:"hardware_cost_usd"`
	CostPerMillionTokens float64 `json:"cost_per_million_tokens"`
	HourlyOperatingCost  float64 `json:"hourly_operating_cost"`
	TokensPerDollar      float64 `json:"tokens_per_dollar"`
	PowerCostPerHour     float64 `json:"power_cost_per_hour"`
	CostPerToken         float64 `json:"cost_per_token"` // power only, no amortization

	// Business (estimates driven by Pricing assumptions)
	MonthlyRevenue      float64 `json:"monthly_revenue"`
	MonthlyProfit       float64 `json:"monthly_profit"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
	FLOPsPerSecond      float64 `json:"flops_per_second"`
	FLOPsPerDollar      float64 `json:"flops_per_dollar"`
	TokensToBreakEven   float64 `json:"tokens_to_break_even"`
	DaysToBreakEven     float64 `json:"days_to_break_even"`

	Spec SpecReference `json:"spec"`
}
