// ABOUTME: Hardware specification records and the immutable hardware catalog
// ABOUTME: Provides typed lookup by class and model with NotFoundError on misses

package models

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// HardwareClass identifies the kind of accelerator a spec describes
type HardwareClass string

const (
	ClassCPU HardwareClass = "cpu"
	ClassGPU HardwareClass = "gpu"
)

// ErrUnknownClass is returned when a class string is neither cpu nor gpu
var ErrUnknownClass = errors.New("unknown hardware class")

// ParseHardwareClass converts a user-supplied string into a HardwareClass
func ParseHardwareClass(s string) (HardwareClass, error) {
	switch HardwareClass(strings.ToLower(strings.TrimSpace(s))) {
	case ClassCPU:
		return ClassCPU, nil
	case ClassGPU:
		return ClassGPU, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownClass, s)
}

// Label returns the display label for the class ("CPU" or "GPU")
func (c HardwareClass) Label() string {
	return strings.ToUpper(string(c))
}

// HardwareSpec describes one hardware model. Only TDP, price and baseline
// throughput take part in arithmetic; the remaining fields are descriptive.
type HardwareSpec struct {
	Class                   HardwareClass `json:"class" yaml:"-"`
	Model                   string        `json:"model" yaml:"model"`
	ThermalDesignPowerWatts float64       `json:"tdp_watts" yaml:"tdp_watts"`
	PriceUSD                float64       `json:"price_usd" yaml:"price_usd"`
	BaselineTokensPerSecond float64       `json:"baseline_tokens_per_second" yaml:"baseline_tokens_per_second"`

	Cores               int     `json:"cores,omitempty" yaml:"cores,omitempty"`
	BaseClockGHz        float64 `json:"base_clock_ghz,omitempty" yaml:"base_clock_ghz,omitempty"`
	MaxClockGHz         float64 `json:"max_clock_ghz,omitempty" yaml:"max_clock_ghz,omitempty"`
	Memory              string  `json:"memory,omitempty" yaml:"memory,omitempty"`
	MemoryBandwidthGBps float64 `json:"memory_bandwidth_gbps,omitempty" yaml:"memory_bandwidth_gbps,omitempty"`
	TensorCores         int     `json:"tensor_cores,omitempty" yaml:"tensor_cores,omitempty"`
}

// Validate checks the arithmetic fields of a spec
func (s HardwareSpec) Validate() error {
	if strings.TrimSpace(s.Model) == "" {
		return fmt.Errorf("model name is required")
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"tdp_watts", s.ThermalDesignPowerWatts},
		{"price_usd", s.PriceUSD},
		{"baseline_tokens_per_second", s.BaselineTokensPerSecond},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%s: %s must be a non-negative number, got %v", s.Model, f.name, f.value)
		}
	}
	return nil
}

// NotFoundError reports a model that is not present under its class.
// It indicates a caller/catalog mismatch, not a user condition.
type NotFoundError struct {
	Class HardwareClass
	Model string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("hardware model %q not found in %s catalog", e.Model, e.Class)
}

// Catalog is a read-only table of hardware specs keyed by class and model.
// The zero value is an empty catalog.
type Catalog struct {
	specs map[HardwareClass]map[string]HardwareSpec
}

// NewCatalog builds a catalog from specs, rejecting unknown classes,
// invalid specs and duplicate model names within a class.
func NewCatalog(specs []HardwareSpec) (*Catalog, error) {
	c := &Catalog{specs: map[HardwareClass]map[string]HardwareSpec{
		ClassCPU: {},
		ClassGPU: {},
	}}

	for _, spec := range specs {
		byModel, ok := c.specs[spec.Class]
		if !ok {
			return nil, fmt.Errorf("%w: %q (model %q)", ErrUnknownClass, spec.Class, spec.Model)
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid %s spec: %w", spec.Class, err)
		}
		if _, dup := byModel[spec.Model]; dup {
			return nil, fmt.Errorf("duplicate %s model %q", spec.Class, spec.Model)
		}
		byModel[spec.Model] = spec
	}

	return c, nil
}

// Lookup returns the spec for class/model or a *NotFoundError
func (c *Catalog) Lookup(class HardwareClass, model string) (HardwareSpec, error) {
	if c != nil {
		if spec, ok := c.specs[class][model]; ok {
			return spec, nil
		}
	}
	return HardwareSpec{}, &NotFoundError{Class: class, Model: model}
}

// Models returns the model names for a class in sorted order
func (c *Catalog) Models(class HardwareClass) []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.specs[class]))
	for name := range c.specs[class] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Specs returns copies of all specs for a class, sorted by model name
func (c *Catalog) Specs(class HardwareClass) []HardwareSpec {
	names := c.Models(class)
	out := make([]HardwareSpec, 0, len(names))
	for _, name := range names {
		out = append(out, c.specs[class][name])
	}
	return out
}

// Classes returns the classes in display order
func (c *Catalog) Classes() []HardwareClass {
	return []HardwareClass{ClassCPU, ClassGPU}
}

// Len returns the number of models across all classes
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, byModel := range c.specs {
		n += len(byModel)
	}
	return n
}
