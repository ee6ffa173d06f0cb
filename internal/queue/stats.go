package queue

import (
	"math"
	"time"

	"github.com/example/frenchie/internal/catalog"
	"github.com/example/frenchie/internal/spaced_repetition"
	"github.com/example/frenchie/pkg/models"
)

// Stats summarizes progress over the catalog. Entries for ids outside the
// catalog are ignored.
func Stats(c *catalog.Catalog, progress models.ProgressMap, now time.Time) models.LearningStats {
	stats := models.LearningStats{
		Total: c.Len(),
		Due:   len(DueCards(c, progress, now)),
	}

	for _, item := range c.Items() {
		state, found := progress[item.ID]
		if !found || state.IsNew {
			stats.New++
		}
		if !found {
			continue
		}
		if state.Repetition > 0 {
			stats.Learned++
		}
		if spaced_repetition.IsMastered(state) {
			stats.Mastered++
		}
	}

	if stats.Total > 0 {
		stats.MasteryPercentage = int(math.Round(float64(stats.Learned) / float64(stats.Total) * 100))
	}
	return stats
}
