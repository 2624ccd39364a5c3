// ABOUTME: Request and response envelopes for the calculator HTTP API
// ABOUTME: JSON-serializable structures shared by handlers and the CLI client

package models

import "time"

// MetricsRequest selects one hardware model at a daily utilization
type MetricsRequest struct {
	Class            string  `json:"class"`
	Model            string  `json:"model"`
	UtilizationHours float64 `json:"utilization_hours"`
}

// MetricsResponse wraps a single result; Result is null when nothing is selected
type MetricsResponse struct {
	Result *MetricsResult `json:"result"`
}

// CompareRequest selects a CPU and a GPU for side-by-side comparison.
// HorizonMonths falls back to the configured default when omitted.
type CompareRequest struct {
	CPUModel         string  `json:"cpu_model"`
	GPUModel         string  `json:"gpu_model"`
	UtilizationHours float64 `json:"utilization_hours"`
	HorizonMonths    *int    `json:"horizon_months,omitempty"`
	Mode             string  `json:"mode,omitempty"`
}

// CompareResponse carries both metric sets and every derived series
type CompareResponse struct {
	CPU        *MetricsResult   `json:"cpu"`
	GPU        *MetricsResult   `json:"gpu"`
	Comparison []ComparisonRow  `json:"comparison"`
	ROI        []ComparisonRow  `json:"roi"`
	BreakEven  Projection       `json:"break_even"`
	Summary    BreakEvenSummary `json:"summary"`
}

// HardwareListResponse is the catalog listing used to populate selectors
type HardwareListResponse struct {
	CPU      []HardwareSpec `json:"cpu,omitempty"`
	GPU      []HardwareSpec `json:"gpu,omitempty"`
	Metadata Metadata       `json:"metadata"`
}

// Metadata contains response metadata
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Cached    bool      `json:"cached"`
}

// HealthResponse reports service status and catalog size per class
type HealthResponse struct {
	Status string         `json:"status"`
	Source string         `json:"source"`
	Models map[string]int `json:"models"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}
