// ABOUTME: Configuration loader for backend service
// ABOUTME: Loads settings from environment variables (and an optional .env) with defaults

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/markalston/inference-calculator/backend/models"
)

type Config struct {
	// Server
	Port               string
	CacheTTL           int      // seconds, catalog snapshot lifetime
	CORSAllowedOrigins []string // allowed CORS origins (empty = block all cross-origin)

	// Catalog
	CatalogFile   string // YAML catalog replacing the embedded table (optional)
	CatalogSource string // static, remote (default: static)

	// Pricing assumptions
	Pricing models.Pricing

	// Projection
	DefaultHorizonMonths int // used when a compare request omits horizon_months
	MaxHorizonMonths     int // upper bound accepted by the API (0 = unbounded)

	// Rate Limiting
	RateLimitEnabled bool // Enable rate limiting (default: true)
	RateLimitDefault int  // Requests per minute for read endpoints (default: 100)
	RateLimitCompute int  // Requests per minute for metrics/compare (default: 60)
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding variables already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

func Load() (*Config, error) {
	defaults := models.DefaultPricing()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CacheTTL:           getEnvInt("CACHE_TTL", 300),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		CatalogFile:   os.Getenv("CATALOG_FILE"),
		CatalogSource: strings.ToLower(getEnv("CATALOG_SOURCE", "static")),

		Pricing: models.Pricing{
			PowerCostPerKWh:      getEnvFloat("POWER_COST_PER_KWH", defaults.PowerCostPerKWh),
			AmortizationMonths:   getEnvFloat("AMORTIZATION_MONTHS", defaults.AmortizationMonths),
			MarketPricePerToken:  getEnvFloat("MARKET_PRICE_PER_TOKEN", defaults.MarketPricePerToken),
			ReferenceModelParams: getEnvFloat("REFERENCE_MODEL_PARAMS", defaults.ReferenceModelParams),
		},

		DefaultHorizonMonths: getEnvInt("DEFAULT_HORIZON_MONTHS", 24),
		MaxHorizonMonths:     getEnvInt("MAX_HORIZON_MONTHS", 600),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitDefault: getEnvInt("RATE_LIMIT_DEFAULT", 100),
		RateLimitCompute: getEnvInt("RATE_LIMIT_COMPUTE", 60),
	}

	if cfg.CatalogSource != "static" && cfg.CatalogSource != "remote" {
		return nil, fmt.Errorf("CATALOG_SOURCE must be static or remote, got %q", cfg.CatalogSource)
	}
	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("CACHE_TTL must not be negative, got %d", cfg.CacheTTL)
	}
	if err := cfg.Pricing.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pricing: %w", err)
	}
	if cfg.MaxHorizonMonths < 0 {
		return nil, fmt.Errorf("MAX_HORIZON_MONTHS must not be negative, got %d", cfg.MaxHorizonMonths)
	}
	if cfg.DefaultHorizonMonths < 0 || (cfg.MaxHorizonMonths > 0 && cfg.DefaultHorizonMonths > cfg.MaxHorizonMonths) {
		return nil, fmt.Errorf("DEFAULT_HORIZON_MONTHS must be between 0 and %d, got %d", cfg.MaxHorizonMonths, cfg.DefaultHorizonMonths)
	}

	// Validate rate limit values
	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_DEFAULT", cfg.RateLimitDefault},
		{"RATE_LIMIT_COMPUTE", cfg.RateLimitCompute},
	} {
		if rl.value < 1 || rl.value > 10000 {
			return nil, fmt.Errorf("%s must be between 1 and 10000, got %d", rl.name, rl.value)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
