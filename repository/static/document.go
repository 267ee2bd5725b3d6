// Package static serves the fixed employee and plan lists from a YAML document.
package static

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fastygo/petbuddy/domain"
)

//go:embed reference.yaml
var defaultDocument []byte

// Document is the on-disk shape of the reference data.
type Document struct {
	Employees []domain.Employee    `yaml:"employees"`
	Plans     []domain.ProductPlan `yaml:"plans"`
}

// Default parses the reference data compiled into the binary.
func Default() (*Document, error) {
	return Parse(defaultDocument)
}

// Load reads the document at path, falling back to the embedded default when path is empty.
func Load(path string) (*Document, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("static: read file %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes a YAML document. Unknown enumeration values and duplicate
// employee ids are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("static: parse yaml: %w", err)
	}
	if err := doc.check(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) check() error {
	seen := make(map[int]struct{}, len(d.Employees))
	for _, emp := range d.Employees {
		if _, dup := seen[emp.ID]; dup {
			return fmt.Errorf("static: duplicate employee id %d", emp.ID)
		}
		seen[emp.ID] = struct{}{}
	}
	return nil
}
