package models

import (
	"math"
	"testing"
)

func TestDefaultPricing(t *testing.T) {
	p := DefaultPricing()

	if p.PowerCostPerKWh != 0.12 {
		t.Errorf("Expected power cost 0.12, got %v", p.PowerCostPerKWh)
	}
	if p.AmortizationMonths != 24 {
		t.Errorf("Expected 24 amortization months, got %v", p.AmortizationMonths)
	}
	if p.FLOPsPerToken() != 14e9 {
		t.Errorf("Expected 14e9 FLOPs per token, got %v", p.FLOPsPerToken())
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Expected default pricing to be valid, got %v", err)
	}
}

func TestPricing_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Pricing)
	}{
		{"zero amortization", func(p *Pricing) { p.AmortizationMonths = 0 }},
		{"negative power cost", func(p *Pricing) { p.PowerCostPerKWh = -0.01 }},
		{"nan market price", func(p *Pricing) { p.MarketPricePerToken = math.NaN() }},
		{"infinite params", func(p *Pricing) { p.ReferenceModelParams = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPricing()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
