// ABOUTME: HTTP handlers for health and pricing endpoints
// ABOUTME: Reports catalog availability and the active pricing assumptions

package handlers

import (
	"net/http"

	"github.com/markalston/inference-calculator/backend/models"
)

// Health reports catalog source and model counts. A catalog that cannot be
// loaded makes the service unavailable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	snap, _, err := h.loader.Load(r.Context())
	if err != nil {
		h.catalogUnavailable(w, r, err)
		return
	}

	resp := models.HealthResponse{
		Status: "ok",
		Source: snap.Source,
		Models: make(map[string]int),
	}
	for _, class := range snap.Catalog.Classes() {
		resp.Models[string(class)] = len(snap.Catalog.Models(class))
	}
	if h.metrics != nil {
		h.metrics.SetCatalogModels(snap.Catalog)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// GetPricing returns the assumptions every derived metric uses
func (h *Handler) GetPricing(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.pricing)
}
