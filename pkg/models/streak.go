package models

// DateLayout is the calendar date format used for streak stamps
const DateLayout = "2006-01-02"

// StreakState tracks consecutive days on which the daily goal was met
type StreakState struct {
	CurrentStreak     int    `json:"currentStreak"`
	LongestStreak     int    `json:"longestStreak"`
	LastCompletedDate string `json:"lastCompletedDate,omitempty"`
}
