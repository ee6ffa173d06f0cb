package models

import "time"

// Default SM-2 parameters for an item that has never been reviewed
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// ReviewState is the scheduler's belief about how well the learner knows one item
type ReviewState struct {
	Repetition         int       `json:"repetition"`   // consecutive successful reviews
	EaseFactor         float64   `json:"easeFactor"`   // SM-2 EF parameter, >= 1.3
	IntervalDays       int       `json:"intervalDays"` // days until due as of the last review
	NextReviewDueAt    time.Time `json:"nextReviewDueAt"`
	IsNew              bool      `json:"isNew"`
	ForgotCount        int       `json:"forgotCount"`
	LastReviewedAt     time.Time `json:"lastReviewedAt"`
	MarkedVeryFamiliar bool      `json:"markedVeryFamiliar"`
}

// NewReviewState returns the state of an item the learner has not reviewed yet,
// due at the given time.
func NewReviewState(due time.Time) ReviewState {
	return ReviewState{
		EaseFactor:      DefaultEaseFactor,
		NextReviewDueAt: due,
		IsNew:           true,
	}
}

// IsDue reports whether the item should be shown at now
func (s ReviewState) IsDue(now time.Time) bool {
	return !now.Before(s.NextReviewDueAt)
}

// ProgressMap maps item IDs to their review state. It is the only learner state
// the scheduler persists.
type ProgressMap map[string]ReviewState

// Clone returns a shallow copy that can be modified without touching p
func (p ProgressMap) Clone() ProgressMap {
	out := make(ProgressMap, len(p)+1)
	for id, s := range p {
		out[id] = s
	}
	return out
}

// StateOf returns the stored state for id, or a fresh due-now state when the
// item has never been reviewed.
func (p ProgressMap) StateOf(id string, now time.Time) (ReviewState, bool) {
	if s, ok := p[id]; ok {
		return s, true
	}
	return NewReviewState(now), false
}
