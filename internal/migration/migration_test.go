package migration

import (
	"fmt"
	"testing"
	"time"

	"github.com/example/frenchie/pkg/models"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func legacy(forgot int, veryFamiliar bool) models.StoredReviewState {
	return models.StoredReviewState{
		ForgotCount:  forgot,
		LastReviewed: now.Add(-48 * time.Hour).UnixMilli(),
		VeryFamiliar: veryFamiliar,
	}
}

func TestUpgradeLegacy(t *testing.T) {
	tests := []struct {
		name    string
		raw     models.StoredReviewState
		policy  Policy
		wantDue time.Time
		wantNew bool
	}{
		{"forgotten is reinforced tomorrow", legacy(2, false), Park, now.Add(24 * time.Hour), false},
		{"forgotten ignores introduce", legacy(1, false), Introduce, now.Add(24 * time.Hour), false},
		{"introduced is due now", legacy(0, false), Introduce, now, true},
		{"parked is a year out", legacy(0, true), Park, now.Add(365 * 24 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Upgrade(tt.raw, now, tt.policy)
			if !got.NextReviewDueAt.Equal(tt.wantDue) {
				t.Errorf("NextReviewDueAt = %v, want %v", got.NextReviewDueAt, tt.wantDue)
			}
			if got.IsNew != tt.wantNew {
				t.Errorf("IsNew = %v, want %v", got.IsNew, tt.wantNew)
			}
			if got.EaseFactor != models.DefaultEaseFactor || got.Repetition != 0 || got.IntervalDays != 0 {
				t.Errorf("scheduling fields not fresh: %+v", got)
			}
			if got.ForgotCount != tt.raw.ForgotCount || got.MarkedVeryFamiliar != tt.raw.VeryFamiliar {
				t.Errorf("legacy fields lost: %+v", got)
			}
			if got.LastReviewedAt.UnixMilli() != tt.raw.LastReviewed {
				t.Errorf("LastReviewedAt = %v", got.LastReviewedAt)
			}
		})
	}
}

func TestUpgradePartialRecordIsLegacy(t *testing.T) {
	rep := 4
	ease := 2.9
	raw := models.StoredReviewState{Repetition: &rep, EaseFactor: &ease}

	got := Upgrade(raw, now, Park)
	if got.Repetition != 0 || got.EaseFactor != models.DefaultEaseFactor {
		t.Errorf("partial record was not reinitialized: %+v", got)
	}
}

func TestUpgradeScheduledRecordPassesThrough(t *testing.T) {
	state := models.ReviewState{
		Repetition:      3,
		EaseFactor:      2.2,
		IntervalDays:    7,
		NextReviewDueAt: now.Add(72 * time.Hour),
		ForgotCount:     1,
		LastReviewedAt:  now.Add(-time.Hour),
	}

	got := Upgrade(Encode(state), now, Introduce)
	if !sameState(got, state) {
		t.Errorf("Upgrade(Encode(s)) = %+v, want %+v", got, state)
	}
}

func TestMigrateFirstLoadIntroducesFive(t *testing.T) {
	stored := make(map[string]models.StoredReviewState)
	var order []string
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("w-%02d", i)
		order = append(order, id)
		stored[id] = legacy(0, false)
	}
	stored["w-03"] = legacy(2, false)

	progress, report := Migrate(stored, order, now)

	if report.Upgraded != 8 || report.Reinforced != 1 || report.Introduced != 5 || report.Parked != 2 {
		t.Fatalf("report = %+v", report)
	}
	for _, id := range []string{"w-00", "w-01", "w-02", "w-04", "w-05"} {
		if !progress[id].IsDue(now) {
			t.Errorf("%s should be due now", id)
		}
	}
	for _, id := range []string{"w-06", "w-07"} {
		if progress[id].IsDue(now.Add(300 * 24 * time.Hour)) {
			t.Errorf("%s should be parked", id)
		}
	}
	if progress["w-03"].IsDue(now) || !progress["w-03"].IsDue(now.Add(24*time.Hour)) {
		t.Errorf("w-03 should be due in one day: %v", progress["w-03"].NextReviewDueAt)
	}
}

func TestMigrateReturningLearnerParksLegacy(t *testing.T) {
	stored := map[string]models.StoredReviewState{
		"a": Encode(models.NewReviewState(now)),
		"b": legacy(0, false),
	}

	progress, report := Migrate(stored, []string{"a", "b"}, now)
	if report.Introduced != 0 || report.Parked != 1 {
		t.Fatalf("report = %+v", report)
	}
	if progress["b"].IsDue(now) {
		t.Error("legacy entry of a returning learner should be parked")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	stored := map[string]models.StoredReviewState{
		"a": legacy(0, false),
		"b": legacy(3, false),
		"c": legacy(0, true),
	}

	first, _ := Migrate(stored, []string{"c", "b", "a"}, now)
	second, report := Migrate(EncodeMap(first), []string{"c", "b", "a"}, now.Add(time.Hour))

	if report.Upgraded != 0 {
		t.Errorf("second pass upgraded %d records", report.Upgraded)
	}
	if len(second) != len(first) {
		t.Fatalf("len = %d, want %d", len(second), len(first))
	}
	for id, s := range first {
		if !sameState(second[id], s) {
			t.Errorf("%s changed: %+v -> %+v", id, s, second[id])
		}
	}
}

func TestMigrateOrphansVisitedLast(t *testing.T) {
	stored := map[string]models.StoredReviewState{
		"zz": legacy(0, false),
		"aa": legacy(0, false),
		"k1": legacy(0, false),
	}
	got := visitOrder(stored, []string{"k1", "missing"})
	want := []string{"k1", "aa", "zz"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("visitOrder = %v, want %v", got, want)
	}
}

func sameState(a, b models.ReviewState) bool {
	return a.Repetition == b.Repetition &&
		a.EaseFactor == b.EaseFactor &&
		a.IntervalDays == b.IntervalDays &&
		a.NextReviewDueAt.Equal(b.NextReviewDueAt) &&
		a.IsNew == b.IsNew &&
		a.ForgotCount == b.ForgotCount &&
		a.LastReviewedAt.Equal(b.LastReviewedAt) &&
		a.MarkedVeryFamiliar == b.MarkedVeryFamiliar
}
