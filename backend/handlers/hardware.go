// ABOUTME: HTTP handlers for the hardware catalog
// ABOUTME: Lists specs per class and looks up a single model by name

package handlers

import (
	"net/http"

	"github.com/markalston/inference-calculator/backend/models"
	"github.com/markalston/inference-calculator/backend/services"
)

// ListHardware returns the catalog, optionally filtered with ?class=cpu|gpu.
// Specs are sorted by model name within each class.
func (h *Handler) ListHardware(w http.ResponseWriter, r *http.Request) {
	var only models.HardwareClass
	if raw := r.URL.Query().Get("class"); raw != "" {
		class, err := models.ParseHardwareClass(raw)
		if err != nil {
			h.handleError(w, r, "Invalid hardware class", err)
			return
		}
		only = class
	}

	snap, cached, err := h.loader.Load(r.Context())
	if err != nil {
		h.catalogUnavailable(w, r, err)
		return
	}

	resp := models.HardwareListResponse{
		Metadata: models.Metadata{
			Timestamp: snap.LoadedAt,
			Source:    snap.Source,
			Cached:    cached,
		},
	}
	if only == "" || only == models.ClassCPU {
		resp.CPU = snap.Catalog.Specs(models.ClassCPU)
	}
	if only == "" || only == models.ClassGPU {
		resp.GPU = snap.Catalog.Specs(models.ClassGPU)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// GetHardware returns one spec addressed by /hardware/{class}/{model}
func (h *Handler) GetHardware(w http.ResponseWriter, r *http.Request) {
	class, err := models.ParseHardwareClass(r.PathValue("class"))
	if err != nil {
		h.handleError(w, r, "Invalid hardware class", err)
		return
	}
	model := r.PathValue("model")
	if err := services.ValidateModelName(model); err != nil {
		h.writeErrorWithDetails(w, "Invalid model name", err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.loader.Catalog(r.Context())
	if err != nil {
		h.catalogUnavailable(w, r, err)
		return
	}

	spec, err := c.Lookup(class, model)
	if err != nil {
		h.handleError(w, r, "Hardware model not found", err)
		return
	}

	h.writeJSON(w, http.StatusOK, spec)
}
