// Package catalog holds the static list of vocabulary items a learner can study.
// A Catalog is built once at startup and never changes afterwards.
package catalog

import (
	"fmt"
	"strings"

	"github.com/example/frenchie/pkg/models"
)

// Catalog is an ordered, read-only set of vocabulary items
type Catalog struct {
	items []models.VocabularyItem
	index map[string]int
}

// New builds a catalog from items, keeping their order. IDs must be unique and
// non-empty.
func New(items []models.VocabularyItem) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		items: make([]models.VocabularyItem, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, item := range items {
		item.ID = strings.TrimSpace(item.ID)
		if item.ID == "" {
			return nil, fmt.Errorf("item %d: %w", i+1, ErrMissingID)
		}
		if _, exists := c.index[item.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, item.ID)
		}
		c.index[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns the items in catalog order. The slice is a copy.
func (c *Catalog) Items() []models.VocabularyItem {
	out := make([]models.VocabularyItem, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup returns the item with the given id
func (c *Catalog) Lookup(id string) (models.VocabularyItem, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.VocabularyItem{}, false
	}
	return c.items[i], true
}

// Contains reports whether id belongs to the catalog
func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Position returns the catalog order of id, or -1
func (c *Catalog) Position(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// ByLevel returns the items of one level in catalog order
func (c *Catalog) ByLevel(level models.Level) []models.VocabularyItem {
	return c.filter(func(item models.VocabularyItem) bool { return item.Level == level })
}

// Collection returns the items tagged with the named collection
func (c *Catalog) Collection(name string) []models.VocabularyItem {
	return c.filter(func(item models.VocabularyItem) bool {
		return strings.EqualFold(item.Collection, name)
	})
}

// Collections returns the distinct collection names in order of first appearance
func (c *Catalog) Collections() []string {
	seen := make(map[string]bool)
	var names []string
	for _, item := range c.items {
		if item.Collection == "" || seen[item.Collection] {
			continue
		}
		seen[item.Collection] = true
		names = append(names, item.Collection)
	}
	return names
}

func (c *Catalog) filter(keep func(models.VocabularyItem) bool) []models.VocabularyItem {
	var out []models.VocabularyItem
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
