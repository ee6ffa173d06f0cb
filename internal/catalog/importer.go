package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/frenchie/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath                 string // Path to the Excel or CSV file
	IDColumn                 string // Column with the item id (optional)
	TermColumn               string // Column with the French term
	TranslationColumn        string // Column with the translation
	ExampleTermColumn        string // Column with the French example
	ExampleTranslationColumn string // Column with the translated example
	LevelColumn              string // Column with the level (A2, B1, B2)
	CategoryColumn           string // Column with the category
	GenderColumn             string // Column with the gender
	CollectionColumn         string // Column with the collection
	SheetName                string // Name of the sheet to import
	StartRow                 int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		IDColumn:                 "A",
		TermColumn:               "B",
		TranslationColumn:        "C",
		ExampleTermColumn:        "D",
		ExampleTranslationColumn: "E",
		LevelColumn:              "F",
		CategoryColumn:           "G",
		GenderColumn:             "H",
		CollectionColumn:         "I",
		SheetName:                "Sheet1",
		StartRow:                 2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	Items          []models.VocabularyItem
	TotalProcessed int
	Skipped        int
	Errors         []string
}

// ImportItems reads vocabulary items from an Excel or CSV file
func ImportItems(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

// importFromExcel reads items from the configured sheet
func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	cols, err := config.columns()
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	seen := make(map[string]bool)
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		result.add(row, cols, "", i+1, seen)
	}
	return result, nil
}

// importFromCSV reads items from a CSV file. A row holding only a first cell
// starts a new collection for the rows below it.
func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return readCSV(file, config)
}

func readCSV(r io.Reader, config ImportConfig) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	cols, err := config.columns()
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	seen := make(map[string]bool)
	rowNum := 0
	currentCollection := ""

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}

		if isCollectionHeader(row) {
			currentCollection = strings.Trim(strings.TrimSpace(row[0]), "\"")
			continue
		}

		result.TotalProcessed++
		result.add(row, cols, currentCollection, rowNum, seen)
	}

	return result, nil
}

func isCollectionHeader(row []string) bool {
	if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
		return false
	}
	for _, cell := range row[1:] {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// columnIndexes holds 0-based positions, -1 when a column is not configured
type columnIndexes struct {
	id, term, translation, exampleTerm, exampleTranslation int
	level, category, gender, collection                     int
}

func (config ImportConfig) columns() (columnIndexes, error) {
	var idx columnIndexes
	targets := []struct {
		name string
		dst  *int
	}{
		{config.IDColumn, &idx.id},
		{config.TermColumn, &idx.term},
		{config.TranslationColumn, &idx.translation},
		{config.ExampleTermColumn, &idx.exampleTerm},
		{config.ExampleTranslationColumn, &idx.exampleTranslation},
		{config.LevelColumn, &idx.level},
		{config.CategoryColumn, &idx.category},
		{config.GenderColumn, &idx.gender},
		{config.CollectionColumn, &idx.collection},
	}
	for _, t := range targets {
		if t.name == "" {
			*t.dst = -1
			continue
		}
		n, err := excelize.ColumnNameToNumber(t.name)
		if err != nil {
			return idx, fmt.Errorf("invalid column %q: %w", t.name, err)
		}
		*t.dst = n - 1
	}
	if idx.term < 0 || idx.translation < 0 {
		return idx, fmt.Errorf("term and translation columns are required")
	}
	return idx, nil
}

// add converts one row and records it or the reason it was rejected
func (r *ImportResult) add(row []string, cols columnIndexes, collection string, rowNum int, seen map[string]bool) {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	item := models.VocabularyItem{
		ID:                 cell(cols.id),
		Term:               cell(cols.term),
		Translation:        cell(cols.translation),
		ExampleTerm:        cell(cols.exampleTerm),
		ExampleTranslation: cell(cols.exampleTranslation),
		Level:              models.Level(strings.ToUpper(cell(cols.level))),
		Category:           models.Category(strings.ToLower(cell(cols.category))),
		Gender:             parseGender(cell(cols.gender)),
		Collection:         cell(cols.collection),
	}

	if item.Term == "" || item.Translation == "" {
		r.Skipped++
		return
	}
	if item.ID == "" {
		item.ID = fmt.Sprintf("import-%04d", rowNum)
	}
	if item.Level == "" {
		item.Level = models.LevelA2
	}
	if !item.Level.Valid() {
		r.Errors = append(r.Errors, fmt.Sprintf("Row %d: unknown level %q", rowNum, item.Level))
		return
	}
	if item.Category == "" {
		item.Category = models.CategoryWord
	}
	if !item.Category.Valid() {
		r.Errors = append(r.Errors, fmt.Sprintf("Row %d: unknown category %q", rowNum, item.Category))
		return
	}
	if item.Collection == "" {
		item.Collection = collection
	}
	if seen[item.ID] {
		r.Errors = append(r.Errors, fmt.Sprintf("Row %d: duplicate id %s", rowNum, item.ID))
		return
	}
	seen[item.ID] = true
	r.Items = append(r.Items, item)
}

func parseGender(s string) models.Gender {
	switch strings.ToLower(s) {
	case "m", "masc", "masculine", "masculin":
		return models.GenderMasculine
	case "f", "fem", "feminine", "féminin":
		return models.GenderFeminine
	}
	return models.GenderNone
}

// IsSpreadsheet reports whether path names a file ImportItems can read
func IsSpreadsheet(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".csv":
		return true
	}
	return false
}
