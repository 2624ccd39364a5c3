// ABOUTME: Inference metrics engine for one hardware selection
// ABOUTME: Derives throughput, power, cost and business metrics from catalog specs

package services

import (
	"errors"
	"math"

	"github.com/markalston/inference-calculator/backend/models"
)

const (
	secondsPerHour = 3600
	daysPerMonth   = 30
	wattsPerKW     = 1000
	tokensPerM     = 1e6
)

// ErrInvalidUtilization is returned for negative, NaN or infinite utilization hours
var ErrInvalidUtilization = errors.New("invalid utilization hours")

// MetricsEngine computes metrics against an injected catalog and pricing
type MetricsEngine struct {
	catalog *models.Catalog
	pricing models.Pricing
}

// NewMetricsEngine creates a new metrics engine
func NewMetricsEngine(catalog *models.Catalog, pricing models.Pricing) *MetricsEngine {
	return &MetricsEngine{catalog: catalog, pricing: pricing}
}

// Pricing returns the assumptions the engine computes with
func (e *MetricsEngine) Pricing() models.Pricing {
	return e.pricing
}

// Compute derives all metrics for class/model running hours per day.
// It returns (nil, nil) when model is empty or hours is zero: nothing is
// selected yet. Unknown models surface the catalog's *models.NotFoundError.
func (e *MetricsEngine) Compute(class models.HardwareClass, model string, hours float64) (*models.MetricsResult, error) {
	if err := ValidateUtilizationHours(hours); err != nil {
		return nil, err
	}
	if model == "" || hours == 0 {
		return nil, nil
	}

	spec, err := e.catalog.Lookup(class, model)
	if err != nil {
		return nil, err
	}
	return computeMetrics(spec, hours, e.pricing), nil
}

func computeMetrics(spec models.HardwareSpec, hours float64, p models.Pricing) *models.MetricsResult {
	tps := spec.BaselineTokensPerSecond
	tdpKW := spec.ThermalDesignPowerWatts / wattsPerKW
	hardwareCost := spec.PriceUSD
	var amortized float64
	if p.AmortizationMonths > 0 {
		amortized = finite(hardwareCost / p.AmortizationMonths)
	}

	r := &models.MetricsResult{
		UtilizationHours: hours,
		TokensPerSecond:  tps,
		TokensPerHour:    finite(tps * secondsPerHour),
		HardwareCostUSD:  hardwareCost,
		Spec: models.SpecReference{
			Class:    spec.Class,
			Model:    spec.Model,
			TDPWatts: spec.ThermalDesignPowerWatts,
			PriceUSD: spec.PriceUSD,
			Memory:   spec.Memory,
		},
	}

	// Performance
	r.DailyTokens = finite(r.TokensPerHour * hours)
	r.MonthlyTokens = finite(r.DailyTokens * daysPerMonth)
	if tdpKW > 0 {
		r.TokensPerWatt = finite(tps / tdpKW)
	}

	// Power and unit cost
	r.DailyPowerKWh = finite(tdpKW * hours)
	r.DailyPowerCost = finite(r.DailyPowerKWh * p.PowerCostPerKWh)
	r.MonthlyPowerCost = finite(r.DailyPowerCost * daysPerMonth)
	if r.MonthlyTokens > 0 {
		r.CostPerMillionTokens = finite((r.MonthlyPowerCost + amortized) / r.MonthlyTokens * tokensPerM)
	}
	r.HourlyOperatingCost = finite(r.DailyPowerCost / hours)
	if r.HourlyOperatingCost > 0 {
		r.TokensPerDollar = finite(r.TokensPerHour / r.HourlyOperatingCost)
	}
	r.PowerCostPerHour = finite(tdpKW * p.PowerCostPerKWh)
	if r.TokensPerHour > 0 {
		r.CostPerToken = finite(r.PowerCostPerHour / r.TokensPerHour)
	}

	// Business estimates. FLOPs assume a dense forward pass of the reference
	// model and are illustrative, not measured.
	r.MonthlyRevenue = finite(r.MonthlyTokens * p.MarketPricePerToken)
	r.MonthlyProfit = finite(r.MonthlyRevenue - r.MonthlyPowerCost - amortized)
	if r.MonthlyRevenue > 0 {
		r.ProfitMarginPercent = finite(r.MonthlyProfit / r.MonthlyRevenue * 100)
	}
	r.FLOPsPerSecond = finite(tps * p.FLOPsPerToken())
	price := hardwareCost
	if price <= 0 {
		price = 1
	}
	r.FLOPsPerDollar = finite(r.FLOPsPerSecond / price)
	if margin := p.MarketPricePerToken - r.CostPerMillionTokens/tokensPerM; margin > 0 {
		r.TokensToBreakEven = finite(hardwareCost / margin)
	}
	if r.DailyTokens > 0 {
		r.DaysToBreakEven = finite(r.TokensToBreakEven / r.DailyTokens)
	}

	return r
}

// finite maps NaN and ±Inf to zero so every result stays JSON-encodable
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
