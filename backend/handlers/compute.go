// ABOUTME: HTTP handlers for metric computation and CPU vs GPU comparison
// ABOUTME: Validates selections, runs the engine and shapes chart series

package handlers

import (
	"net/http"

	"github.com/markalston/inference-calculator/backend/models"
	"github.com/markalston/inference-calculator/backend/services"
)

// ComputeMetrics derives metrics for one selection. An empty model or zero
// hours yields {"result": null}.
func (h *Handler) ComputeMetrics(w http.ResponseWriter, r *http.Request) {
	var req models.MetricsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := services.ValidateModelName(req.Model); err != nil {
		h.writeErrorWithDetails(w, "Invalid model name", err.Error(), http.StatusBadRequest)
		return
	}
	if err := services.ValidateUtilizationHours(req.UtilizationHours); err != nil {
		h.handleError(w, r, "Invalid utilization hours", err)
		return
	}

	var class models.HardwareClass
	if req.Model != "" {
		c, err := models.ParseHardwareClass(req.Class)
		if err != nil {
			h.handleError(w, r, "Invalid hardware class", err)
			return
		}
		class = c
	}

	engine, err := h.engine(r.Context())
	if err != nil {
		h.catalogUnavailable(w, r, err)
		return
	}

	result, err := engine.Compute(class, req.Model, req.UtilizationHours)
	h.observe("metrics", err, result == nil)
	if err != nil {
		h.handleError(w, r, "Failed to compute metrics", err)
		return
	}

	h.writeJSON(w, http.StatusOK, models.MetricsResponse{Result: result})
}

// Compare computes both selections and every derived series. Either side
// may be unselected; the series are then empty.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var req models.CompareRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	for _, name := range []string{req.CPUModel, req.GPUModel} {
		if err := services.ValidateModelName(name); err != nil {
			h.writeErrorWithDetails(w, "Invalid model name", err.Error(), http.StatusBadRequest)
			return
		}
	}
	if err := services.ValidateUtilizationHours(req.UtilizationHours); err != nil {
		h.handleError(w, r, "Invalid utilization hours", err)
		return
	}

	horizon, limit := h.horizonBounds()
	if req.HorizonMonths != nil {
		horizon = *req.HorizonMonths
	}
	if err := services.ValidateHorizon(horizon, limit); err != nil {
		h.handleError(w, r, "Invalid horizon", err)
		return
	}

	mode, err := models.ParseProjectionMode(req.Mode)
	if err != nil {
		h.handleError(w, r, "Invalid projection mode", err)
		return
	}

	engine, err := h.engine(r.Context())
	if err != nil {
		h.catalogUnavailable(w, r, err)
		return
	}

	cpu, err := engine.Compute(models.ClassCPU, req.CPUModel, req.UtilizationHours)
	if err != nil {
		h.observe("compare", err, false)
		h.handleError(w, r, "Failed to compute CPU metrics", err)
		return
	}
	gpu, err := engine.Compute(models.ClassGPU, req.GPUModel, req.UtilizationHours)
	if err != nil {
		h.observe("compare", err, false)
		h.handleError(w, r, "Failed to compute GPU metrics", err)
		return
	}

	projection, err := services.Project(mode, cpu, gpu, horizon, req.UtilizationHours)
	h.observe("compare", err, cpu == nil || gpu == nil)
	if err != nil {
		h.handleError(w, r, "Failed to project break-even", err)
		return
	}

	h.writeJSON(w, http.StatusOK, models.CompareResponse{
		CPU:        cpu,
		GPU:        gpu,
		Comparison: services.BuildComparison(cpu, gpu),
		ROI:        services.BuildROIComparison(cpu, gpu),
		BreakEven:  projection,
		Summary:    projection.Summary(),
	})
}
