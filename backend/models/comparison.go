// ABOUTME: Chart-ready comparison rows and break-even projection series
// ABOUTME: Shapes CPU vs GPU metrics for bar and line chart consumers

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ComparisonRow is one labeled metric with its CPU and GPU values
type ComparisonRow struct {
	Metric      string  `json:"metric"`
	CPU         float64 `json:"cpu"`
	GPU         float64 `json:"gpu"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
}

// ProjectionMode selects the cumulative quantity a projection tracks
type ProjectionMode string

const (
	// ModeTotalCost tracks hardware cost plus accrued power cost (monotonic)
	ModeTotalCost ProjectionMode = "cost"
	// ModeNetRevenue tracks revenue minus hardware and power cost (can cross zero)
	ModeNetRevenue ProjectionMode = "revenue"
)

// ErrInvalidMode is returned for projection modes other than cost or revenue
var ErrInvalidMode = errors.New("invalid projection mode")

// ParseProjectionMode parses a mode string; empty selects total cost
func ParseProjectionMode(s string) (ProjectionMode, error) {
	switch ProjectionMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeTotalCost:
		return ModeTotalCost, nil
	case ModeNetRevenue:
		return ModeNetRevenue, nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidMode, s, ModeTotalCost, ModeNetRevenue)
}

// BreakEvenPoint is the cumulative position of both choices at one month.
// CPU and GPU hold cumulative cost or cumulative net revenue depending on
// the owning projection's mode.
type BreakEvenPoint struct {
	Month               int     `json:"month"`
	CPU                 float64 `json:"cpu"`
	GPU                 float64 `json:"gpu"`
	CPUMonthlyPowerCost float64 `json:"cpu_monthly_power_cost"`
	GPUMonthlyPowerCost float64 `json:"gpu_monthly_power_cost"`
	Difference          float64 `json:"difference"`
}

// Projection is a month-by-month series from month 0 to HorizonMonths inclusive
type Projection struct {
	Mode             ProjectionMode   `json:"mode"`
	HorizonMonths    int              `json:"horizon_months"`
	UtilizationHours float64          `json:"utilization_hours"`
	Points           []BreakEvenPoint `json:"points"`
}

// Crossover returns the first month at which the GPU is at least as good as
// the CPU: cumulative cost no higher in cost mode, cumulative revenue no lower
// in revenue mode. ok is false when that does not happen within the horizon.
func (p Projection) Crossover() (month int, ok bool) {
	for _, pt := range p.Points {
		switch p.Mode {
		case ModeNetRevenue:
			if pt.GPU >= pt.CPU {
				return pt.Month, true
			}
		default:
			if pt.GPU <= pt.CPU {
				return pt.Month, true
			}
		}
	}
	return 0, false
}

// Payback returns the first month at which cumulative net revenue for class
// turns non-negative. It only applies to revenue-mode projections.
func (p Projection) Payback(class HardwareClass) (month int, ok bool) {
	if p.Mode != ModeNetRevenue {
		return 0, false
	}
	for _, pt := range p.Points {
		v := pt.CPU
		if class == ClassGPU {
			v = pt.GPU
		}
		if v >= 0 {
			return pt.Month, true
		}
	}
	return 0, false
}

// BreakEvenSummary reports break-even months in a JSON-friendly form.
// Nil fields mean "not reached within horizon".
type BreakEvenSummary struct {
	CrossoverMonth  *int `json:"crossover_month"`
	CPUPaybackMonth *int `json:"cpu_payback_month,omitempty"`
	GPUPaybackMonth *int `json:"gpu_payback_month,omitempty"`
}

// Summary collects Crossover and, in revenue mode, Payback for both classes
func (p Projection) Summary() BreakEvenSummary {
	var s BreakEvenSummary
	if m, ok := p.Crossover(); ok {
		s.CrossoverMonth = &m
	}
	if p.Mode == ModeNetRevenue {
		if m, ok := p.Payback(ClassCPU); ok {
			s.CPUPaybackMonth = &m
		}
		if m, ok := p.Payback(ClassGPU); ok {
			s.GPUPaybackMonth = &m
		}
	}
	return s
}
