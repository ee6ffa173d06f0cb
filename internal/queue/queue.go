// Package queue decides which vocabulary items a learner sees in a session.
package queue

import (
	"math/rand"
	"sync"
	"time"

	"github.com/example/frenchie/internal/catalog"
	"github.com/example/frenchie/pkg/models"
)

// RecentForgetWindow is how long after a "forgot" an item keeps top priority
const RecentForgetWindow = 24 * time.Hour

// Builder assembles learning queues over one catalog
type Builder struct {
	catalog *catalog.Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBuilder creates a builder. Queues built with the same seed, progress and
// time come out in the same order.
func NewBuilder(c *catalog.Catalog, seed int64) *Builder {
	return &Builder{
		catalog: c,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Build returns at most maxSize items for the next session in shuffled order.
// Recently forgotten items are picked first, then other due reviews, then new
// items in catalog order; the pick is shuffled as a whole.
func (b *Builder) Build(progress models.ProgressMap, maxSize int, now time.Time) []models.VocabularyItem {
	picked := Candidates(b.catalog, progress, maxSize, now)

	b.mu.Lock()
	b.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	b.mu.Unlock()

	return picked
}

// Candidates returns the items Build would deliver, in priority order and
// before shuffling.
func Candidates(c *catalog.Catalog, progress models.ProgressMap, maxSize int, now time.Time) []models.VocabularyItem {
	if maxSize <= 0 {
		return []models.VocabularyItem{}
	}

	var forgotten, reviews, fresh []models.VocabularyItem
	for _, item := range DueCards(c, progress, now) {
		state, found := progress[item.ID]
		switch {
		case !found || state.IsNew:
			fresh = append(fresh, item)
		case recentlyForgotten(state, now):
			forgotten = append(forgotten, item)
		default:
			reviews = append(reviews, item)
		}
	}

	budget := maxSize - len(forgotten) - len(reviews)
	if budget < 0 {
		budget = 0
	}
	if budget < len(fresh) {
		fresh = fresh[:budget]
	}

	picked := make([]models.VocabularyItem, 0, len(forgotten)+len(reviews)+len(fresh))
	picked = append(picked, forgotten...)
	picked = append(picked, reviews...)
	picked = append(picked, fresh...)
	if len(picked) > maxSize {
		picked = picked[:maxSize]
	}
	return picked
}

// DueCards returns the catalog items that are due at now, in catalog order.
// Items without progress are due. Items marked very familiar are retired and
// never due.
func DueCards(c *catalog.Catalog, progress models.ProgressMap, now time.Time) []models.VocabularyItem {
	due := make([]models.VocabularyItem, 0)
	for _, item := range c.Items() {
		state, found := progress[item.ID]
		if !found {
			due = append(due, item)
			continue
		}
		if state.MarkedVeryFamiliar || !state.IsDue(now) {
			continue
		}
		due = append(due, item)
	}
	return due
}

func recentlyForgotten(state models.ReviewState, now time.Time) bool {
	return state.ForgotCount > 0 && now.Sub(state.LastReviewedAt) < RecentForgetWindow
}
