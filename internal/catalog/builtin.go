package catalog

import (
	_ "embed"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

// Default returns the catalog shipped with the application
func Default() (*Catalog, error) {
	return ParseYAML(defaultCatalogYAML)
}
