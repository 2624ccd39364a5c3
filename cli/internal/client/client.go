// ABOUTME: HTTP client for the inference calculator API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markalston/inference-calculator/backend/models"
)

// Client is the API client for the inference calculator backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the backend URL the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIError is a non-200 response from the backend
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("backend error: %s (%s)", e.Message, e.Details)
	}
	return fmt.Sprintf("backend error: %s", e.Message)
}

// IsNotFound reports whether err is a 404 from the backend
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Health calls GET /api/v1/health
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var health models.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Hardware calls GET /api/v1/hardware. An empty class lists both.
func (c *Client) Hardware(ctx context.Context, class string) (*models.HardwareListResponse, error) {
	path := "/api/v1/hardware"
	if class != "" {
		path += "?class=" + url.QueryEscape(class)
	}

	var list models.HardwareListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// HardwareSpec calls GET /api/v1/hardware/{class}/{model}
func (c *Client) HardwareSpec(ctx context.Context, class, model string) (*models.HardwareSpec, error) {
	path := "/api/v1/hardware/" + url.PathEscape(class) + "/" + url.PathEscape(model)

	var spec models.HardwareSpec
	if err := c.do(ctx, http.MethodGet, path, nil, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Pricing calls GET /api/v1/pricing
func (c *Client) Pricing(ctx context.Context) (*models.Pricing, error) {
	var p models.Pricing
	if err := c.do(ctx, http.MethodGet, "/api/v1/pricing", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Metrics calls POST /api/v1/metrics. A nil result means nothing was selected.
func (c *Client) Metrics(ctx context.Context, input *models.MetricsRequest) (*models.MetricsResult, error) {
	var resp models.MetricsResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/metrics", input, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// Compare calls POST /api/v1/compare
func (c *Client) Compare(ctx context.Context, input *models.CompareRequest) (*models.CompareResponse, error) {
	var resp models.CompareResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/compare", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do sends an optional JSON body and decodes a 200 response into out
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal input: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("request canceled")
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errResp models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("status %d", resp.StatusCode)}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error, Details: errResp.Details}
}
