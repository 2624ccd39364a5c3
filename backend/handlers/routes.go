// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods, handlers and rate limit tiers

package handlers

import "net/http"

// Rate limit tiers. Compute endpoints run the engine and get a tighter budget.
const (
	TierDefault = "default"
	TierCompute = "compute"
)

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL pattern (e.g., "/api/v1/hardware/{class}/{model}")
	Handler http.HandlerFunc // Handler function
	Tier    string           // rate limit tier
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & Status
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health, Tier: TierDefault},

		// Catalog
		{Method: http.MethodGet, Path: "/api/v1/hardware", Handler: h.ListHardware, Tier: TierDefault},
		{Method: http.MethodGet, Path: "/api/v1/hardware/{class}/{model}", Handler: h.GetHardware, Tier: TierDefault},
		{Method: http.MethodGet, Path: "/api/v1/pricing", Handler: h.GetPricing, Tier: TierDefault},

		// Computation
		{Method: http.MethodPost, Path: "/api/v1/metrics", Handler: h.ComputeMetrics, Tier: TierCompute},
		{Method: http.MethodPost, Path: "/api/v1/compare", Handler: h.Compare, Tier: TierCompute},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec, Tier: TierDefault},
	}
}
