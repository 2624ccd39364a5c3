// ABOUTME: HTTP handlers for inference calculator API endpoints
// ABOUTME: Shared handler state, JSON helpers and error-to-status mapping

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/markalston/inference-calculator/backend/catalog"
	"github.com/markalston/inference-calculator/backend/config"
	"github.com/markalston/inference-calculator/backend/models"
	"github.com/markalston/inference-calculator/backend/observability"
	"github.com/markalston/inference-calculator/backend/services"
)

// maxRequestBodySize limits JSON request bodies to 1MB
const maxRequestBodySize = 1 << 20 // 1MB

// defaultHorizonMonths applies when no config is supplied
const defaultHorizonMonths = 24

type Handler struct {
	cfg     *config.Config
	loader  *catalog.Loader
	pricing models.Pricing
	metrics *observability.Metrics
}

// NewHandler wires the catalog loader and optional metrics. A nil cfg uses
// default pricing; a nil loader serves the embedded catalog.
func NewHandler(cfg *config.Config, loader *catalog.Loader, metrics *observability.Metrics) *Handler {
	h := &Handler{
		cfg:     cfg,
		loader:  loader,
		pricing: models.DefaultPricing(),
		metrics: metrics,
	}
	if cfg != nil {
		h.pricing = cfg.Pricing
	}
	if h.loader == nil {
		h.loader = catalog.NewLoader(catalog.StaticSource{}, time.Hour)
	}
	return h
}

// engine builds a metrics engine over the current catalog snapshot
func (h *Handler) engine(ctx context.Context) (*services.MetricsEngine, error) {
	c, err := h.loader.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return services.NewMetricsEngine(c, h.pricing), nil
}

func (h *Handler) horizonBounds() (def, limit int) {
	if h.cfg == nil {
		return defaultHorizonMonths, 0
	}
	return h.cfg.DefaultHorizonMonths, h.cfg.MaxHorizonMonths
}

func (h *Handler) observe(operation string, err error, empty bool) {
	if h.metrics == nil {
		return
	}
	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case empty:
		outcome = "empty"
	}
	h.metrics.ObserveComputation(operation, outcome)
}

// decodeJSON reads a size-limited JSON body into v, writing a 400 on failure
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return false
		}
		h.writeErrorWithDetails(w, "Invalid JSON", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	var notFound *models.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidUtilization),
		errors.Is(err, services.ErrInvalidHorizon),
		errors.Is(err, models.ErrInvalidMode),
		errors.Is(err, models.ErrUnknownClass):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// handleError logs err once and writes the mapped status. Server-side
// failures hide their details from the client.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	code := statusForError(err)
	if code >= http.StatusInternalServerError {
		slog.Error(msg, "path", r.URL.Path, "error", err)
		h.writeError(w, msg, code)
		return
	}
	slog.Debug(msg, "path", r.URL.Path, "error", err, "status", code)
	h.writeErrorWithDetails(w, msg, err.Error(), code)
}

// catalogUnavailable reports a failed catalog load as 503
func (h *Handler) catalogUnavailable(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("Hardware catalog unavailable", "path", r.URL.Path, "source", h.loader.SourceName(), "error", err)
	h.writeError(w, "Hardware catalog unavailable", http.StatusServiceUnavailable)
}

// writeJSON encodes v before writing the status, so an encoding failure
// reaches the client as a 500 instead of an empty 200
func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to encode response", "error", err)
		code = http.StatusInternalServerError
		body, _ = json.Marshal(models.ErrorResponse{
			Error: "Failed to encode response",
			Code:  code,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Debug("Failed to write response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeErrorWithDetails(w, message, "", code)
}

func (h *Handler) writeErrorWithDetails(w http.ResponseWriter, message, details string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error:   message,
		Details: details,
		Code:    code,
	})
}
