package streak

import (
	"testing"
	"time"

	"github.com/example/frenchie/pkg/models"
)

func TestRecordGoalCompletionScenario(t *testing.T) {
	state := models.StreakState{CurrentStreak: 3, LongestStreak: 3, LastCompletedDate: "2024-01-01"}

	state = RecordGoalCompletion(state, "2024-01-02")
	if state.CurrentStreak != 4 || state.LongestStreak < 4 {
		t.Fatalf("after next day: %+v", state)
	}

	same := RecordGoalCompletion(state, "2024-01-02")
	if same != state {
		t.Fatalf("same day changed state: %+v -> %+v", state, same)
	}

	state = RecordGoalCompletion(state, "2024-01-10")
	if state.CurrentStreak != 1 || state.LongestStreak != 4 || state.LastCompletedDate != "2024-01-10" {
		t.Fatalf("after gap: %+v", state)
	}
}

func TestRecordGoalCompletion(t *testing.T) {
	tests := []struct {
		name  string
		state models.StreakState
		today string
		want  models.StreakState
	}{
		{
			name:  "first ever",
			today: "2024-03-01",
			want:  models.StreakState{CurrentStreak: 1, LongestStreak: 1, LastCompletedDate: "2024-03-01"},
		},
		{
			name:  "across month end",
			state: models.StreakState{CurrentStreak: 5, LongestStreak: 9, LastCompletedDate: "2024-02-29"},
			today: "2024-03-01",
			want:  models.StreakState{CurrentStreak: 6, LongestStreak: 9, LastCompletedDate: "2024-03-01"},
		},
		{
			name:  "across year end",
			state: models.StreakState{CurrentStreak: 1, LongestStreak: 1, LastCompletedDate: "2023-12-31"},
			today: "2024-01-01",
			want:  models.StreakState{CurrentStreak: 2, LongestStreak: 2, LastCompletedDate: "2024-01-01"},
		},
		{
			name:  "over DST change",
			state: models.StreakState{CurrentStreak: 2, LongestStreak: 2, LastCompletedDate: "2024-03-30"},
			today: "2024-03-31",
			want:  models.StreakState{CurrentStreak: 3, LongestStreak: 3, LastCompletedDate: "2024-03-31"},
		},
		{
			name:  "garbage stamp starts over",
			state: models.StreakState{CurrentStreak: 7, LongestStreak: 7, LastCompletedDate: "yesterday"},
			today: "2024-03-31",
			want:  models.StreakState{CurrentStreak: 1, LongestStreak: 7, LastCompletedDate: "2024-03-31"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecordGoalCompletion(tt.state, tt.today); got != tt.want {
				t.Errorf("RecordGoalCompletion() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToday(t *testing.T) {
	// 23:30 UTC is already the next day in Paris
	now := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)
	if got := Today(now, nil); got != "2024-06-01" {
		t.Errorf("Today(UTC) = %s", got)
	}
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("no tzdata:", err)
	}
	if got := Today(now, paris); got != "2024-06-02" {
		t.Errorf("Today(Paris) = %s", got)
	}
}

func TestCurrent(t *testing.T) {
	state := models.StreakState{CurrentStreak: 4, LongestStreak: 4, LastCompletedDate: "2024-01-05"}
	if got := Current(state, "2024-01-05"); got != 4 {
		t.Errorf("same day = %d", got)
	}
	if got := Current(state, "2024-01-06"); got != 4 {
		t.Errorf("next day = %d", got)
	}
	if got := Current(state, "2024-01-07"); got != 0 {
		t.Errorf("after gap = %d", got)
	}
}

func TestGoal(t *testing.T) {
	g := NewGoal(3)
	hits := []bool{g.Hit(), g.Hit(), g.Hit(), g.Hit()}
	want := []bool{false, false, true, false}
	for i := range want {
		if hits[i] != want[i] {
			t.Errorf("hit %d = %v, want %v", i+1, hits[i], want[i])
		}
	}
	if !g.Reached() || g.Count() != 4 {
		t.Errorf("Reached = %v, Count = %d", g.Reached(), g.Count())
	}
	if NewGoal(0).Target != DefaultDailyGoal {
		t.Error("zero target did not fall back to the default")
	}
}
