package queue

import (
	"sort"

	"github.com/example/frenchie/internal/catalog"
	"github.com/example/frenchie/pkg/models"
)

// ListForgotten returns the items forgotten at least once, most forgotten first.
// Ties keep catalog order.
func ListForgotten(c *catalog.Catalog, progress models.ProgressMap) []models.ForgottenItem {
	list := make([]models.ForgottenItem, 0)
	for _, item := range c.Items() {
		if state, ok := progress[item.ID]; ok && state.ForgotCount > 0 {
			list = append(list, models.ForgottenItem{Item: item, ForgotCount: state.ForgotCount})
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ForgotCount > list[j].ForgotCount
	})
	return list
}

// ListFamiliar returns the items marked very familiar, most recently marked first
func ListFamiliar(c *catalog.Catalog, progress models.ProgressMap) []models.VocabularyItem {
	list := make([]models.VocabularyItem, 0)
	for _, item := range c.Items() {
		if progress[item.ID].MarkedVeryFamiliar {
			list = append(list, item)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return progress[list[i].ID].LastReviewedAt.After(progress[list[j].ID].LastReviewedAt)
	})
	return list
}
