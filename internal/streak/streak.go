// Package streak tracks how many days in a row the learner met the daily goal.
//
// Dates are calendar stamps ("2006-01-02") taken in one configured location.
// The previous day is found on the calendar rather than by subtracting 24 hours,
// so a DST change never skips or repeats a day.
package streak

import (
	"time"

	"github.com/example/frenchie/pkg/models"
)

// Today returns the calendar stamp of now in loc. A nil loc means UTC.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(models.DateLayout)
}

// Yesterday returns the stamp of the day before stamp, or "" when stamp is not
// a valid date.
func Yesterday(stamp string) string {
	d, err := time.Parse(models.DateLayout, stamp)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, -1).Format(models.DateLayout)
}

// RecordGoalCompletion registers that the daily goal was met on today.
// Completing twice on the same day changes nothing; completing on the day after
// the last completion extends the streak; anything else starts a new one.
func RecordGoalCompletion(state models.StreakState, today string) models.StreakState {
	switch state.LastCompletedDate {
	case today:
		return state
	case Yesterday(today):
		state.CurrentStreak++
	default:
		state.CurrentStreak = 1
	}
	if state.CurrentStreak > state.LongestStreak {
		state.LongestStreak = state.CurrentStreak
	}
	state.LastCompletedDate = today
	return state
}

// Current returns the streak as it should be displayed on today: a streak whose
// last completion is older than yesterday is already broken.
func Current(state models.StreakState, today string) int {
	switch state.LastCompletedDate {
	case today, Yesterday(today):
		return state.CurrentStreak
	}
	return 0
}
