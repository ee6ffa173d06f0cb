package catalog

import (
	"fmt"
	"os"

	"github.com/example/frenchie/pkg/models"
	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk layout of a catalog file
type fileFormat struct {
	Items []models.VocabularyItem `yaml:"items"`
}

// ParseYAML builds a catalog from YAML data
func ParseYAML(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	for i, item := range f.Items {
		if item.Level != "" && !item.Level.Valid() {
			return nil, fmt.Errorf("item %s: unknown level %q", item.ID, item.Level)
		}
		if item.Category != "" && !item.Category.Valid() {
			return nil, fmt.Errorf("item %s: unknown category %q", item.ID, item.Category)
		}
		if item.Category == "" {
			f.Items[i].Category = models.CategoryWord
		}
	}
	return New(f.Items)
}

// LoadYAML reads a catalog file from disk
func LoadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseYAML(data)
}

// MarshalYAML encodes items in the catalog file format
func MarshalYAML(items []models.VocabularyItem) ([]byte, error) {
	return yaml.Marshal(fileFormat{Items: items})
}

// Load picks the catalog source: the built-in list when path is empty, a
// spreadsheet import for .xlsx/.csv files, a YAML catalog file otherwise.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	if IsSpreadsheet(path) {
		config := DefaultImportConfig()
		config.FilePath = path
		result, err := ImportItems(config)
		if err != nil {
			return nil, err
		}
		return New(result.Items)
	}
	return LoadYAML(path)
}
