package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMetricsResponse_NullResult(t *testing.T) {
	data, err := json.Marshal(MetricsResponse{})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	if string(data) != `{"result":null}` {
		t.Errorf("Expected {\"result\":null}, got %s", data)
	}
}

func TestCompareRequest_OmittedHorizon(t *testing.T) {
	var req CompareRequest
	body := `{"cpu_model":"AMD EPYC 9654","gpu_model":"NVIDIA L4","utilization_hours":8}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if req.HorizonMonths != nil {
		t.Errorf("Expected nil HorizonMonths, got %d", *req.HorizonMonths)
	}
	if req.UtilizationHours != 8 {
		t.Errorf("Expected UtilizationHours 8, got %v", req.UtilizationHours)
	}
}

func TestCompareRequest_ExplicitZeroHorizon(t *testing.T) {
	var req CompareRequest
	if err := json.Unmarshal([]byte(`{"horizon_months":0}`), &req); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if req.HorizonMonths == nil || *req.HorizonMonths != 0 {
		t.Errorf("Expected explicit zero horizon, got %v", req.HorizonMonths)
	}
}

func TestErrorResponse_OmitsEmptyDetails(t *testing.T) {
	data, err := json.Marshal(ErrorResponse{Error: "bad request", Code: 400})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	if strings.Contains(string(data), "details") {
		t.Errorf("Expected details to be omitted, got %s", data)
	}
}

func TestHardwareListResponse_OmitsFilteredClass(t *testing.T) {
	resp := HardwareListResponse{
		GPU: []HardwareSpec{{Class: ClassGPU, Model: "NVIDIA T4"}},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	if strings.Contains(string(data), `"cpu"`) {
		t.Errorf("Expected cpu list to be omitted, got %s", data)
	}
	if !strings.Contains(string(data), `"class":"gpu"`) {
		t.Errorf("Expected gpu spec with class, got %s", data)
	}
}
