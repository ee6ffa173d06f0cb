package migration

import (
	"fmt"
	"testing"
	"time"

	"github.com/example/frenchie/pkg/models"
	"pgregory.net/rapid"
)

func genStoredMap(t *rapid.T) (map[string]models.StoredReviewState, []string) {
	n := rapid.IntRange(0, 30).Draw(t, "entries")
	stored := make(map[string]models.StoredReviewState, n)
	order := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("item-%03d", i)
		order = append(order, id)
		raw := models.StoredReviewState{
			ForgotCount:  rapid.IntRange(0, 4).Draw(t, "forgot"),
			LastReviewed: now.Add(-time.Duration(rapid.IntRange(0, 1000).Draw(t, "age")) * time.Hour).UnixMilli(),
			VeryFamiliar: rapid.Bool().Draw(t, "familiar"),
		}
		if rapid.Bool().Draw(t, "scheduled") {
			state := Upgrade(raw, now, Park)
			state.Repetition = rapid.IntRange(0, 8).Draw(t, "repetition")
			state.IntervalDays = rapid.IntRange(1, 90).Draw(t, "interval")
			raw = Encode(state)
		}
		stored[id] = raw
	}
	return stored, order
}

// TestPropertyMigrationIdempotent verifies a second migration pass changes nothing.
func TestPropertyMigrationIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		stored, order := genStoredMap(t)

		first, _ := Migrate(stored, order, now)
		second, report := Migrate(EncodeMap(first), order, now.Add(3*time.Hour))

		if report.Upgraded != 0 {
			t.Fatalf("second pass upgraded %d records", report.Upgraded)
		}
		for id, s := range first {
			if !sameState(second[id], s) {
				t.Fatalf("%s changed on second pass", id)
			}
		}
	})
}

// TestPropertyMigrationIntroducesAtMostFive verifies the first-load cap.
func TestPropertyMigrationIntroducesAtMostFive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		stored, order := genStoredMap(t)
		_, report := Migrate(stored, order, now)
		if report.Introduced > FirstLoadIntroductions {
			t.Fatalf("introduced %d items", report.Introduced)
		}
		if report.Upgraded != report.Reinforced+report.Introduced+report.Parked {
			t.Fatalf("report does not add up: %+v", report)
		}
	})
}
