// ABOUTME: Break-even projector for cumulative CPU vs GPU cost or revenue
// ABOUTME: Produces one point per month from month 0 through the horizon

package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/markalston/inference-calculator/backend/models"
)

// ErrInvalidHorizon is returned for negative or over-limit horizons
var ErrInvalidHorizon = errors.New("invalid horizon months")

// cumulativeFunc gives one side's cumulative position after month months
type cumulativeFunc func(r *models.MetricsResult, month float64) float64

// totalCost: acquisition cost plus accrued power, monotonically increasing
func totalCost(r *models.MetricsResult, month float64) float64 {
	return r.HardwareCostUSD + r.MonthlyPowerCost*month
}

// netRevenue: revenue less acquisition and power, starts at -hardware cost
func netRevenue(r *models.MetricsResult, month float64) float64 {
	return r.MonthlyRevenue*month - r.HardwareCostUSD - r.MonthlyPowerCost*month
}

// ProjectBreakEven projects cumulative total cost of ownership for both
// choices. Points is empty when either side is missing or horizonMonths < 0.
func ProjectBreakEven(cpu, gpu *models.MetricsResult, horizonMonths int, hours float64) models.Projection {
	return project(models.ModeTotalCost, totalCost, cpu, gpu, horizonMonths, hours)
}

// ProjectNetRevenue projects cumulative net revenue for both choices
func ProjectNetRevenue(cpu, gpu *models.MetricsResult, horizonMonths int, hours float64) models.Projection {
	return project(models.ModeNetRevenue, netRevenue, cpu, gpu, horizonMonths, hours)
}

// Project dispatches on mode
func Project(mode models.ProjectionMode, cpu, gpu *models.MetricsResult, horizonMonths int, hours float64) (models.Projection, error) {
	switch mode {
	case models.ModeTotalCost, "":
		return ProjectBreakEven(cpu, gpu, horizonMonths, hours), nil
	case models.ModeNetRevenue:
		return ProjectNetRevenue(cpu, gpu, horizonMonths, hours), nil
	}
	return models.Projection{}, fmt.Errorf("%w: %q", models.ErrInvalidMode, mode)
}

func project(mode models.ProjectionMode, f cumulativeFunc, cpu, gpu *models.MetricsResult, horizonMonths int, hours float64) models.Projection {
	p := models.Projection{
		Mode:             mode,
		HorizonMonths:    horizonMonths,
		UtilizationHours: hours,
		Points:           []models.BreakEvenPoint{},
	}
	if cpu == nil || gpu == nil || horizonMonths < 0 {
		return p
	}

	p.Points = make([]models.BreakEvenPoint, 0, horizonMonths+1)
	for month := 0; month <= horizonMonths; month++ {
		c := finite(f(cpu, float64(month)))
		g := finite(f(gpu, float64(month)))
		p.Points = append(p.Points, models.BreakEvenPoint{
			Month:               month,
			CPU:                 c,
			GPU:                 g,
			CPUMonthlyPowerCost: cpu.MonthlyPowerCost,
			GPUMonthlyPowerCost: gpu.MonthlyPowerCost,
			Difference:          finite(math.Abs(c - g)),
		})
	}
	return p
}
