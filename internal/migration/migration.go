// Package migration upgrades progress records written before the scheduler
// existed into full review states.
package migration

import (
	"math"
	"sort"
	"time"

	"github.com/example/frenchie/pkg/models"
)

const (
	// FirstLoadIntroductions caps how many untouched legacy items become due at
	// once on a learner's first load.
	FirstLoadIntroductions = 5
	// ReinforceDelay is when legacy items with failures come back
	ReinforceDelay = 24 * time.Hour
	// ParkDuration pushes the remaining legacy items out of the way
	ParkDuration = 365 * 24 * time.Hour
)

// Policy decides how a legacy record without failures is scheduled
type Policy int

const (
	// Park schedules the item a year out
	Park Policy = iota
	// Introduce makes the item a new card due immediately
	Introduce
)

// Report counts what a migration pass did
type Report struct {
	Upgraded   int // legacy records converted
	Reinforced int // legacy records with failures, due in a day
	Introduced int // legacy records due now
	Parked     int // legacy records pushed a year out
}

// Upgrade converts one stored record into a review state. Records that already
// carry scheduling fields are decoded as they are and the policy is ignored.
func Upgrade(raw models.StoredReviewState, now time.Time, policy Policy) models.ReviewState {
	if raw.HasSchedule() {
		return decode(raw, now)
	}

	state := models.NewReviewState(now)
	state.ForgotCount = raw.ForgotCount
	state.MarkedVeryFamiliar = raw.VeryFamiliar
	state.LastReviewedAt = fromMillis(raw.LastReviewed)

	switch {
	case raw.ForgotCount > 0:
		state.IsNew = false
		state.NextReviewDueAt = now.Add(ReinforceDelay)
	case policy == Introduce:
		state.NextReviewDueAt = now
	default:
		state.NextReviewDueAt = now.Add(ParkDuration)
	}
	return state
}

// Migrate upgrades every legacy record in stored. order lists item ids in
// catalog order; it decides which items are introduced first. Ids missing from
// order are visited afterwards in lexical order.
func Migrate(stored map[string]models.StoredReviewState, order []string, now time.Time) (models.ProgressMap, Report) {
	var report Report
	progress := make(models.ProgressMap, len(stored))

	// first load under the scheduler: nothing has been scheduled yet
	firstLoad := true
	for _, raw := range stored {
		if raw.HasSchedule() {
			firstLoad = false
			break
		}
	}

	for _, id := range visitOrder(stored, order) {
		raw := stored[id]
		if raw.HasSchedule() {
			progress[id] = decode(raw, now)
			continue
		}

		policy := Park
		if raw.ForgotCount == 0 && firstLoad && report.Introduced < FirstLoadIntroductions {
			policy = Introduce
		}
		progress[id] = Upgrade(raw, now, policy)

		report.Upgraded++
		switch {
		case raw.ForgotCount > 0:
			report.Reinforced++
		case policy == Introduce:
			report.Introduced++
		default:
			report.Parked++
		}
	}

	return progress, report
}

func visitOrder(stored map[string]models.StoredReviewState, order []string) []string {
	ids := make([]string, 0, len(stored))
	listed := make(map[string]bool, len(order))
	for _, id := range order {
		if _, ok := stored[id]; ok && !listed[id] {
			listed[id] = true
			ids = append(ids, id)
		}
	}

	var rest []string
	for id := range stored {
		if !listed[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(ids, rest...)
}

// decode reads a record that has scheduling fields, filling defaults for the
// optional ones.
func decode(raw models.StoredReviewState, now time.Time) models.ReviewState {
	state := models.ReviewState{
		EaseFactor:         models.DefaultEaseFactor,
		ForgotCount:        raw.ForgotCount,
		LastReviewedAt:     fromMillis(raw.LastReviewed),
		MarkedVeryFamiliar: raw.VeryFamiliar,
		NextReviewDueAt:    now,
	}
	if raw.Repetition != nil {
		state.Repetition = *raw.Repetition
	}
	if raw.EaseFactor != nil {
		state.EaseFactor = math.Max(models.MinEaseFactor, *raw.EaseFactor)
	}
	if raw.IntervalDays != nil {
		state.IntervalDays = *raw.IntervalDays
	}
	if raw.NextReview != nil {
		state.NextReviewDueAt = fromMillis(*raw.NextReview)
	}
	if raw.IsNew != nil {
		state.IsNew = *raw.IsNew
	} else {
		state.IsNew = raw.LastReviewed == 0
	}
	if state.ForgotCount < 0 {
		state.ForgotCount = 0
	}
	return state
}

// Encode converts a review state into its stored form
func Encode(state models.ReviewState) models.StoredReviewState {
	repetition := state.Repetition
	ease := state.EaseFactor
	interval := state.IntervalDays
	next := toMillis(state.NextReviewDueAt)
	isNew := state.IsNew

	return models.StoredReviewState{
		ForgotCount:  state.ForgotCount,
		LastReviewed: toMillis(state.LastReviewedAt),
		VeryFamiliar: state.MarkedVeryFamiliar,
		Repetition:   &repetition,
		EaseFactor:   &ease,
		IntervalDays: &interval,
		NextReview:   &next,
		IsNew:        &isNew,
	}
}

// EncodeMap converts a whole progress map
func EncodeMap(progress models.ProgressMap) map[string]models.StoredReviewState {
	out := make(map[string]models.StoredReviewState, len(progress))
	for id, state := range progress {
		out[id] = Encode(state)
	}
	return out
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
