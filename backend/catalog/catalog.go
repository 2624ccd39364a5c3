// ABOUTME: Hardware catalog document parsing and the embedded default table
// ABOUTME: Decodes a YAML document of cpu and gpu spec lists into a models.Catalog

package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/markalston/inference-calculator/backend/models"
	"gopkg.in/yaml.v3"
)

//go:embed hardware.yaml
var defaultDocument []byte

// document is the on-disk shape of a catalog file
type document struct {
	CPU []models.HardwareSpec `yaml:"cpu"`
	GPU []models.HardwareSpec `yaml:"gpu"`
}

// Parse decodes a catalog document. Unknown keys are rejected so a typo in a
// field name does not silently zero a value used in arithmetic.
func Parse(data []byte) (*models.Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog document is empty")
		}
		return nil, fmt.Errorf("parsing catalog document: %w", err)
	}

	specs := make([]models.HardwareSpec, 0, len(doc.CPU)+len(doc.GPU))
	for _, s := range doc.CPU {
		s.Class = models.ClassCPU
		specs = append(specs, s)
	}
	for _, s := range doc.GPU {
		s.Class = models.ClassGPU
		specs = append(specs, s)
	}

	c, err := models.NewCatalog(specs)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	return c, nil
}

// Default returns the built-in catalog. The embedded document is covered by
// tests, so a parse failure here is a build defect.
func Default() *models.Catalog {
	c, err := Parse(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("embedded hardware catalog is invalid: %v", err))
	}
	return c
}
