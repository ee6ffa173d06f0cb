package models

// ProgressSchemaVersion is the version written by the current code.
// Version 1 is the bare {id: {forgotCount, lastReviewed, veryFamiliar}} object
// written before the scheduler existed.
const ProgressSchemaVersion = 2

// StoredProgress is the persisted envelope of a ProgressMap
type StoredProgress struct {
	Version int                          `json:"version"`
	Entries map[string]StoredReviewState `json:"entries"`
}

// StoredReviewState is the persisted form of ReviewState. Scheduling fields are
// pointers because records written before the scheduler existed lack them.
// Timestamps are Unix milliseconds.
type StoredReviewState struct {
	ForgotCount  int   `json:"forgotCount"`
	LastReviewed int64 `json:"lastReviewed"`
	VeryFamiliar bool  `json:"veryFamiliar,omitempty"`

	Repetition   *int     `json:"repetition,omitempty"`
	EaseFactor   *float64 `json:"easeFactor,omitempty"`
	IntervalDays *int     `json:"interval,omitempty"`
	NextReview   *int64   `json:"nextReviewDate,omitempty"`
	IsNew        *bool    `json:"isNew,omitempty"`
}

// HasSchedule reports whether the record carries scheduling fields. Only the
// interval is checked; partially populated records count as legacy.
func (r StoredReviewState) HasSchedule() bool {
	return r.IntervalDays != nil
}
