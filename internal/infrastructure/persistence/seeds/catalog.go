// Package seeds holds reference data loaded by the seed command.
package seeds

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/orris-inc/setracker/internal/application/technology/dto"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// LoadCatalog reads a catalog file, or the built-in catalog when path is empty.
func LoadCatalog(path string) (dto.Catalog, error) {
	if path == "" {
		return ParseCatalog(defaultCatalog)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return dto.Catalog{}, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (dto.Catalog, error) {
	var catalog dto.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return dto.Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]bool)
	for i, category := range catalog.Categories {
		if category.Name == "" {
			return dto.Catalog{}, fmt.Errorf("catalog category %d has no name", i+1)
		}
		for j, tech := range category.Technologies {
			if tech.Name == "" {
				return dto.Catalog{}, fmt.Errorf("technology %d in category %q has no name", j+1, category.Name)
			}
			if seen[tech.Name] {
				return dto.Catalog{}, fmt.Errorf("technology %q is listed more than once", tech.Name)
			}
			seen[tech.Name] = true
		}
	}
	return catalog, nil
}
