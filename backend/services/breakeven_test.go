package services

import (
	"errors"
	"math"
	"testing"

	"github.com/markalston/inference-calculator/backend/models"
)

func TestProjectBreakEven_MonthZero(t *testing.T) {
	// Scenario: month 0 is acquisition cost only.
	// CPU 8999, GPU 10000, difference 1001
	cpu, gpu := scenarioResults(t)
	p := ProjectBreakEven(cpu, gpu, 24, 24)

	if p.Mode != models.ModeTotalCost {
		t.Errorf("Expected cost mode, got %s", p.Mode)
	}
	if len(p.Points) != 25 {
		t.Fatalf("Expected 25 points, got %d", len(p.Points))
	}

	first := p.Points[0]
	if first.Month != 0 || first.CPU != 8999 || first.GPU != 10000 || first.Difference != 1001 {
		t.Errorf("Expected month 0 = 8999/10000/1001, got %+v", first)
	}
}

func TestProjectBreakEven_Accrual(t *testing.T) {
	// Scenario: monthly power cost CPU 30.24, GPU 34.56
	// Month 12: CPU 8999 + 362.88 = 9361.88, GPU 10000 + 414.72 = 10414.72
	cpu, gpu := scenarioResults(t)
	p := ProjectBreakEven(cpu, gpu, 12, 24)

	last := p.Points[12]
	if !approxEqual(last.CPU, 9361.88) {
		t.Errorf("Expected CPU 9361.88, got %v", last.CPU)
	}
	if !approxEqual(last.GPU, 10414.72) {
		t.Errorf("Expected GPU 10414.72, got %v", last.GPU)
	}
	if !approxEqual(last.Difference, 1052.84) {
		t.Errorf("Expected difference 1052.84, got %v", last.Difference)
	}
	if !approxEqual(last.CPUMonthlyPowerCost, 30.24) || !approxEqual(last.GPUMonthlyPowerCost, 34.56) {
		t.Errorf("Expected monthly power 30.24/34.56, got %v/%v", last.CPUMonthlyPowerCost, last.GPUMonthlyPowerCost)
	}

	// GPU costs more to buy and to run, so it never catches up in cost mode
	if _, ok := p.Crossover(); ok {
		t.Error("Expected no cost crossover within horizon")
	}
}

func TestProjectNetRevenue_MonthZero(t *testing.T) {
	cpu, gpu := scenarioResults(t)
	p := ProjectNetRevenue(cpu, gpu, 6, 24)

	if p.Mode != models.ModeNetRevenue {
		t.Errorf("Expected revenue mode, got %s", p.Mode)
	}
	if p.Points[0].CPU != -8999 || p.Points[0].GPU != -10000 {
		t.Errorf("Expected month 0 = -8999/-10000, got %+v", p.Points[0])
	}
}

func TestProjectNetRevenue_Payback(t *testing.T) {
	// Scenario: CPU nets 7776 - 30.24 = 7745.76/month, paid back in month 2.
	// GPU nets 25920 - 34.56 = 25885.44/month, paid back in month 1 and
	// ahead of CPU from month 1.
	cpu, gpu := scenarioResults(t)
	p := ProjectNetRevenue(cpu, gpu, 24, 24)

	if m, ok := p.Payback(models.ClassCPU); !ok || m != 2 {
		t.Errorf("Expected CPU payback month 2, got %d (ok=%v)", m, ok)
	}
	if m, ok := p.Payback(models.ClassGPU); !ok || m != 1 {
		t.Errorf("Expected GPU payback month 1, got %d (ok=%v)", m, ok)
	}
	if m, ok := p.Crossover(); !ok || m != 1 {
		t.Errorf("Expected revenue crossover month 1, got %d (ok=%v)", m, ok)
	}
	if !approxEqual(p.Points[1].GPU, 25885.44-10000) {
		t.Errorf("Expected GPU month 1 %v, got %v", 25885.44-10000, p.Points[1].GPU)
	}
}

func TestProject_PointCount(t *testing.T) {
	cpu, gpu := scenarioResults(t)
	for _, horizon := range []int{0, 1, 24, 600} {
		p := ProjectBreakEven(cpu, gpu, horizon, 24)
		if len(p.Points) != horizon+1 {
			t.Errorf("Expected %d points for horizon %d, got %d", horizon+1, horizon, len(p.Points))
		}
		for i, pt := range p.Points {
			if pt.Month != i {
				t.Fatalf("Expected month %d at index %d, got %d", i, i, pt.Month)
			}
		}
	}
}

func TestProject_EmptyCases(t *testing.T) {
	cpu, gpu := scenarioResults(t)

	cases := map[string]models.Projection{
		"nil cpu":          ProjectBreakEven(nil, gpu, 24, 24),
		"nil gpu":          ProjectNetRevenue(cpu, nil, 24, 24),
		"negative horizon": ProjectBreakEven(cpu, gpu, -1, 24),
	}
	for name, p := range cases {
		if p.Points == nil || len(p.Points) != 0 {
			t.Errorf("%s: expected empty non-nil points, got %v", name, p.Points)
		}
	}
}

func TestProject_Mode(t *testing.T) {
	cpu, gpu := scenarioResults(t)

	p, err := Project("", cpu, gpu, 3, 24)
	if err != nil || p.Mode != models.ModeTotalCost {
		t.Errorf("Expected default cost mode, got %s (%v)", p.Mode, err)
	}

	p, err = Project(models.ModeNetRevenue, cpu, gpu, 3, 24)
	if err != nil || p.Mode != models.ModeNetRevenue {
		t.Errorf("Expected revenue mode, got %s (%v)", p.Mode, err)
	}

	if _, err := Project("profit", cpu, gpu, 3, 24); !errors.Is(err, models.ErrInvalidMode) {
		t.Errorf("Expected ErrInvalidMode, got %v", err)
	}
}

func TestProject_Deterministic(t *testing.T) {
	cpu, gpu := scenarioResults(t)
	a := ProjectNetRevenue(cpu, gpu, 36, 24)
	b := ProjectNetRevenue(cpu, gpu, 36, 24)

	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("Expected identical point %d, got %+v vs %+v", i, a.Points[i], b.Points[i])
		}
	}
}

func TestProject_ExtremeHoursStayFinite(t *testing.T) {
	// Scenario: 1e306 h/day puts monthly power cost near 1e306, so 600 months
	// of accrual overflows float64 unless clamped.
	engine := testEngine(t)
	cpu, _ := engine.Compute(models.ClassCPU, cpuA, 1e306)
	gpu, _ := engine.Compute(models.ClassGPU, gpuB, 1e306)

	for _, mode := range []models.ProjectionMode{models.ModeTotalCost, models.ModeNetRevenue} {
		p, err := Project(mode, cpu, gpu, 600, 1e306)
		if err != nil {
			t.Fatalf("Project(%s) failed: %v", mode, err)
		}
		for _, pt := range p.Points {
			for _, v := range []float64{pt.CPU, pt.GPU, pt.Difference} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("%s: expected finite values at month %d, got %+v", mode, pt.Month, pt)
				}
			}
		}
	}
}
