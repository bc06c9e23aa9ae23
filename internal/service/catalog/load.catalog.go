package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"ashok-storefront/internal/pkg/validation"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Load decodes and validates a YAML catalog
func Load(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var table Table
	if err := dec.Decode(&table); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("catalog is empty")
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if err := validation.Validate(table); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return &table, nil
}

func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// LoadDefault returns the catalog shipped with the binary
func LoadDefault() (*Table, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// Open loads the catalog at path, or the built-in one when path is empty
func Open(path string) (*Table, error) {
	if path == "" {
		return LoadDefault()
	}
	return LoadFile(path)
}
