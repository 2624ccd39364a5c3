// ABOUTME: Tests for sparkline, bar and metric block widgets
// ABOUTME: Validates scaling, sampling and fixed-width layout

package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/inference-calculator/cli/internal/tui/icons"
)

func TestSparkline_Extremes(t *testing.T) {
	got := Sparkline([]float64{-8999, 0, 2620}, 10, "")

	if got != "▁▆█" {
		t.Errorf("expected ▁▆█, got %q", got)
	}
}

func TestSparkline_SamplesToWidth(t *testing.T) {
	values := make([]float64, 601)
	for i := range values {
		values[i] = float64(i)
	}

	got := []rune(Sparkline(values, 40, ""))

	if len(got) != 40 {
		t.Fatalf("expected 40 blocks, got %d", len(got))
	}
	if got[0] != '▁' || got[39] != '█' {
		t.Errorf("expected series to run from ▁ to █, got %q", string(got))
	}
}

func TestSparkline_Empty(t *testing.T) {
	if got := Sparkline(nil, 10, ""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	if got := Sparkline([]float64{1}, 0, ""); got != "" {
		t.Errorf("expected empty string for zero width, got %q", got)
	}
}

func TestSparkline_FlatSeries(t *testing.T) {
	if got := Sparkline([]float64{5, 5, 5}, 3, ""); got != "▅▅▅" {
		t.Errorf("expected middle blocks, got %q", got)
	}
}

func TestSparklineScaled_SharedBounds(t *testing.T) {
	cpu := []float64{0, 10}
	gpu := []float64{0, 100}
	lo, hi := Bounds(cpu, gpu)

	if lo != 0 || hi != 100 {
		t.Fatalf("expected bounds 0/100, got %v/%v", lo, hi)
	}
	if got := SparklineScaled(cpu, 2, "", lo, hi); got != "▁▁" {
		t.Errorf("expected CPU to stay low on the shared scale, got %q", got)
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		scale  float64
		filled int
	}{
		{"full", 100, 100, 10},
		{"half", 50, 100, 5},
		{"negative uses magnitude", -50, 100, 5},
		{"tiny stays visible", 0.01, 100, 1},
		{"zero", 0, 100, 0},
		{"no scale", 5, 0, 0},
		{"over scale clamps", 200, 100, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := Bar(tt.value, tt.scale, 10, lipgloss.Color("#FFFFFF"))
			if got := strings.Count(bar, "█"); got != tt.filled {
				t.Errorf("expected %d filled cells, got %d", tt.filled, got)
			}
			if got := lipgloss.Width(bar); got != 10 {
				t.Errorf("expected width 10, got %d", got)
			}
		})
	}
}

func TestScale(t *testing.T) {
	if got := Scale(3, -7, 5); got != 7 {
		t.Errorf("expected 7, got %v", got)
	}
	if got := Scale(); got != 0 {
		t.Errorf("expected 0 for no values, got %v", got)
	}
}

func TestMetricBlock_Layout(t *testing.T) {
	config := DefaultMetricBlockConfig()
	config.Width = 30

	block := MetricBlock(icons.CPU, "CPU", "Intel Xeon Platinum 8480+ with a long suffix", "$8,999.00 · 350 W", config)

	lines := strings.Split(block, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 30 {
			t.Errorf("line %d: expected width 30, got %d (%q)", i, w, line)
		}
	}
	if !strings.Contains(block, "...") {
		t.Error("expected long value to be truncated")
	}
	if !strings.Contains(block, "$8,999.00") {
		t.Error("expected subtitle in block")
	}
}
