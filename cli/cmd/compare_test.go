// ABOUTME: Tests for the compare command
// ABOUTME: Verifies request building, table output and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/markalston/inference-calculator/backend/models"
)

func TestBuildCompareRequest(t *testing.T) {
	server := compareServer(t, sampleComparison(), nil)
	useSelection(t, server)
	hoursPerDay = 8
	horizonMonths = 36
	projectionMode = "Revenue"

	req, err := buildCompareRequest()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if req.CPUModel != testCPU || req.GPUModel != testGPU {
		t.Errorf("expected selected models, got %q/%q", req.CPUModel, req.GPUModel)
	}
	if req.UtilizationHours != 8 {
		t.Errorf("expected 8 hours, got %v", req.UtilizationHours)
	}
	if req.HorizonMonths == nil || *req.HorizonMonths != 36 {
		t.Errorf("expected horizon 36, got %v", req.HorizonMonths)
	}
	if req.Mode != "revenue" {
		t.Errorf("expected normalized mode revenue, got %q", req.Mode)
	}
}

func TestBuildCompareRequest_Invalid(t *testing.T) {
	server := compareServer(t, sampleComparison(), nil)

	tests := []struct {
		name  string
		setup func()
		want  string
	}{
		{"missing cpu", func() { cpuModel = "" }, "--cpu and --gpu"},
		{"zero hours", func() { hoursPerDay = 0 }, "--hours"},
		{"negative months", func() { horizonMonths = -1 }, "--months"},
		{"unknown mode", func() { projectionMode = "profit" }, "--mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useSelection(t, server)
			tt.setup()

			_, err := buildCompareRequest()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCompareCommand_Human(t *testing.T) {
	var got models.CompareRequest
	server := compareServer(t, sampleComparison(), &got)
	useSelection(t, server)

	var buf bytes.Buffer
	exitCode := runCompare(context.Background(), &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if got.CPUModel != testCPU || got.Mode != "cost" {
		t.Errorf("expected cost-mode request for %s, got %+v", testCPU, got)
	}

	output := buf.String()
	for _, want := range []string{
		"CPU: " + testCPU,
		"Daily Tokens",
		"1.3M",
		"$15.11",
		"99.6%",
		"GPU overtakes CPU: month 1",
		"GPU payback:       month 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestCompareCommand_JSON(t *testing.T) {
	server := compareServer(t, sampleComparison(), nil)
	useSelection(t, server)
	jsonOutput = true

	var buf bytes.Buffer
	if exitCode := runCompare(context.Background(), &buf); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}

	var parsed models.CompareResponse
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.GPU == nil || parsed.GPU.Spec.Model != testGPU {
		t.Errorf("expected GPU %s in JSON, got %+v", testGPU, parsed.GPU)
	}
}

func TestCompareCommand_UnknownModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Hardware not found", Details: "gpu model \"Z\" not found", Code: 404})
	}))
	defer server.Close()
	useSelection(t, server)

	var buf bytes.Buffer
	exitCode := runCompare(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "Hardware not found") {
		t.Errorf("expected backend error in output, got %q", buf.String())
	}
}

func TestCompareCommand_IncompleteResponse(t *testing.T) {
	resp := sampleComparison()
	resp.GPU = nil
	server := compareServer(t, resp, nil)
	useSelection(t, server)

	var buf bytes.Buffer
	if exitCode := runCompare(context.Background(), &buf); exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
}

func TestFormatRowValue(t *testing.T) {
	tests := []struct {
		unit string
		v    float64
		want string
	}{
		{"USD", 8999, "$8,999.00"},
		{"%", 42.26, "42.3%"},
		{"tokens", 2592000, "2.6M"},
		{"tokens/watt", 250, "250"},
	}
	for _, tt := range tests {
		if got := formatRowValue(tt.unit, tt.v); got != tt.want {
			t.Errorf("formatRowValue(%q, %v): expected %q, got %q", tt.unit, tt.v, tt.want, got)
		}
	}
}

func TestFormatSummary_CostMode(t *testing.T) {
	p := models.Projection{Mode: models.ModeTotalCost, HorizonMonths: 24}

	output := formatSummary(p, models.BreakEvenSummary{})

	if !strings.Contains(output, "cost mode, 24 months") {
		t.Errorf("expected mode header, got %q", output)
	}
	if !strings.Contains(output, "not reached") {
		t.Errorf("expected not reached, got %q", output)
	}
	if strings.Contains(output, "payback") {
		t.Errorf("expected no payback lines in cost mode, got %q", output)
	}
}
