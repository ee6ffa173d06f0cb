// Package learning ties the catalog, the scheduler and persistence together into
// the operations a review screen needs. Every mutation takes the caller's working
// progress map and returns the new one; nothing is cached between calls.
package learning

import (
	"context"
	"log"
	"time"

	"github.com/example/frenchie/internal/catalog"
	"github.com/example/frenchie/internal/config"
	"github.com/example/frenchie/internal/queue"
	"github.com/example/frenchie/internal/spaced_repetition"
	"github.com/example/frenchie/internal/storage"
	"github.com/example/frenchie/internal/streak"
	"github.com/example/frenchie/pkg/models"
)

// Options configures a Service. Zero values fall back to defaults.
type Options struct {
	QueueSize int
	DailyGoal int
	Location  *time.Location   // streak calendar
	Seed      int64            // queue shuffling; 0 picks one from the clock
	Now       func() time.Time // clock, mainly for tests
}

// DefaultQueueSize is the session length when none is configured
const DefaultQueueSize = config.DefaultQueueSize

// Service is the scheduler facade for one learner
type Service struct {
	catalog *catalog.Catalog
	store   *storage.Store
	sm2     *spaced_repetition.SM2
	queue   *queue.Builder

	queueSize int
	dailyGoal int
	loc       *time.Location
	clock     func() time.Time
}

// NewService creates a service over catalog c persisting through store
func NewService(c *catalog.Catalog, store *storage.Store, opts Options) *Service {
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.DailyGoal <= 0 {
		opts.DailyGoal = streak.DefaultDailyGoal
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Seed == 0 {
		opts.Seed = opts.Now().UnixNano()
	}

	return &Service{
		catalog:   c,
		store:     store,
		sm2:       spaced_repetition.NewSM2(),
		queue:     queue.NewBuilder(c, opts.Seed),
		queueSize: opts.QueueSize,
		dailyGoal: opts.DailyGoal,
		loc:       opts.Location,
		clock:     opts.Now,
	}
}

// now returns the current time at the precision progress is stored with
func (s *Service) now() time.Time {
	return s.clock().UTC().Truncate(time.Millisecond)
}

// Catalog returns the catalog the service schedules
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// QueueSize returns the configured session length
func (s *Service) QueueSize() int {
	return s.queueSize
}

func (s *Service) order() []string {
	items := s.catalog.Items()
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

// LoadProgress reads the learner's progress, upgrading legacy records
func (s *Service) LoadProgress(ctx context.Context) models.ProgressMap {
	return s.store.LoadProgress(ctx, s.order(), s.now())
}

// ReadProgress is LoadProgress without writing upgraded records back
func (s *Service) ReadProgress(ctx context.Context) models.ProgressMap {
	return s.store.ReadProgress(ctx, s.order(), s.now())
}

// MarkRemembered records a successful review of id
func (s *Service) MarkRemembered(ctx context.Context, progress models.ProgressMap, id string) models.ProgressMap {
	return s.Review(ctx, progress, id, Remembered)
}

// MarkForgot records a failed review of id; the item comes back within hours
func (s *Service) MarkForgot(ctx context.Context, progress models.ProgressMap, id string) models.ProgressMap {
	return s.Review(ctx, progress, id, Forgot)
}

// MarkVeryFamiliar records a perfect review and retires id from the queue
func (s *Service) MarkVeryFamiliar(ctx context.Context, progress models.ProgressMap, id string) models.ProgressMap {
	return s.Review(ctx, progress, id, VeryFamiliar)
}

// RestoreFromFamiliar puts a retired item back into rotation, due now
func (s *Service) RestoreFromFamiliar(ctx context.Context, progress models.ProgressMap, id string) models.ProgressMap {
	return s.Review(ctx, progress, id, Restore)
}

// Review applies outcome to id and saves the result. An id outside the catalog
// leaves progress untouched.
func (s *Service) Review(ctx context.Context, progress models.ProgressMap, id string, outcome Outcome) models.ProgressMap {
	if !s.catalog.Contains(id) {
		log.Printf("Ignoring %s for unknown item %q", outcome, id)
		return progress
	}

	now := s.now()
	state, _ := progress.StateOf(id, now)

	if quality, ok := outcome.Quality(); ok {
		state = s.sm2.Process(state, quality, now)
	} else {
		state.MarkedVeryFamiliar = false
		state.LastReviewedAt = now
		state.NextReviewDueAt = now
	}

	next := progress.Clone()
	next[id] = state
	_ = s.store.SaveProgress(ctx, next)
	return next
}

// LearningQueue returns up to maxSize items for a session. A non-positive
// maxSize yields an empty queue.
func (s *Service) LearningQueue(progress models.ProgressMap, maxSize int) []models.VocabularyItem {
	return s.queue.Build(progress, maxSize, s.now())
}

// LearningStats summarizes progress over the catalog
func (s *Service) LearningStats(progress models.ProgressMap) models.LearningStats {
	return queue.Stats(s.catalog, progress, s.now())
}

// DueCards returns every due item in catalog order
func (s *Service) DueCards(progress models.ProgressMap) []models.VocabularyItem {
	return queue.DueCards(s.catalog, progress, s.now())
}

// DueCount returns how many items are due now
func (s *Service) DueCount(progress models.ProgressMap) int {
	return len(s.DueCards(progress))
}

// ListForgotten returns the forgotten items, most forgotten first
func (s *Service) ListForgotten(progress models.ProgressMap) []models.ForgottenItem {
	return queue.ListForgotten(s.catalog, progress)
}

// ListFamiliar returns the retired items, most recent first
func (s *Service) ListFamiliar(progress models.ProgressMap) []models.VocabularyItem {
	return queue.ListFamiliar(s.catalog, progress)
}

// Today returns the calendar stamp streaks are counted against
func (s *Service) Today() string {
	return streak.Today(s.now(), s.loc)
}

// LoadStreak reads the streak state
func (s *Service) LoadStreak(ctx context.Context) models.StreakState {
	return s.store.LoadStreak(ctx)
}

// RecordGoalCompletion counts today towards the streak and saves the result
func (s *Service) RecordGoalCompletion(ctx context.Context, state models.StreakState) models.StreakState {
	next := streak.RecordGoalCompletion(state, s.Today())
	if next != state {
		_ = s.store.SaveStreak(ctx, next)
	}
	return next
}

// LoadCurrentIndex reads the saved position in the current session
func (s *Service) LoadCurrentIndex(ctx context.Context) int {
	return s.store.LoadCurrentIndex(ctx)
}

// SaveCurrentIndex saves the position in the current session
func (s *Service) SaveCurrentIndex(ctx context.Context, index int) {
	_ = s.store.SaveCurrentIndex(ctx, index)
}

// ResetProgress forgets all review history and the session position. The
// streak is kept.
func (s *Service) ResetProgress(ctx context.Context) error {
	return s.store.Reset(ctx)
}
