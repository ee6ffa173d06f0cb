package queue

import (
	"fmt"
	"testing"
	"time"

	"github.com/example/frenchie/internal/catalog"
	"github.com/example/frenchie/pkg/models"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func testCatalog(t testing.TB, n int) *catalog.Catalog {
	t.Helper()
	items := make([]models.VocabularyItem, n)
	for i := range items {
		items[i] = models.VocabularyItem{
			ID:          fmt.Sprintf("w%02d", i),
			Term:        fmt.Sprintf("mot %d", i),
			Translation: fmt.Sprintf("word %d", i),
			Level:       models.LevelA2,
			Category:    models.CategoryWord,
		}
	}
	c, err := catalog.New(items)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func reviewed(due time.Time) models.ReviewState {
	return models.ReviewState{
		Repetition:      2,
		EaseFactor:      2.5,
		IntervalDays:    6,
		NextReviewDueAt: due,
		LastReviewedAt:  due.Add(-6 * 24 * time.Hour),
	}
}

func forgotten(at time.Time) models.ReviewState {
	return models.ReviewState{
		EaseFactor:      2.3,
		IntervalDays:    1,
		NextReviewDueAt: at.Add(4 * time.Hour),
		ForgotCount:     1,
		LastReviewedAt:  at,
	}
}

func ids(items []models.VocabularyItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestDueCardsEmptyProgress(t *testing.T) {
	c := testCatalog(t, 5)
	got := DueCards(c, models.ProgressMap{}, now)
	if fmt.Sprint(ids(got)) != fmt.Sprint(ids(c.Items())) {
		t.Errorf("DueCards({}) = %v, want whole catalog", ids(got))
	}
}

func TestDueCards(t *testing.T) {
	c := testCatalog(t, 4)
	familiar := reviewed(now.Add(-time.Hour))
	familiar.MarkedVeryFamiliar = true
	progress := models.ProgressMap{
		"w00": reviewed(now.Add(-time.Minute)),
		"w01": reviewed(now.Add(time.Minute)),
		"w02": reviewed(now),
		"w03": familiar,
	}
	got := ids(DueCards(c, progress, now))
	want := []string{"w00", "w02"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("DueCards = %v, want %v", got, want)
	}
}

func TestCandidates(t *testing.T) {
	c := testCatalog(t, 8)
	progress := models.ProgressMap{
		"w00": reviewed(now.Add(48 * time.Hour)),   // not due
		"w01": reviewed(now.Add(-time.Hour)),       // due review
		"w02": forgotten(now.Add(-5 * time.Hour)),  // recently forgotten, due
		"w03": forgotten(now.Add(-time.Hour)),      // recently forgotten, not due yet
		"w04": forgotten(now.Add(-30 * time.Hour)), // forgotten long ago, due review
		"w05": models.NewReviewState(now.Add(365 * 24 * time.Hour)),
		// w06, w07 absent: new
	}

	tests := []struct {
		maxSize int
		want    []string
	}{
		{0, []string{}},
		{-3, []string{}},
		{1, []string{"w02"}},
		{2, []string{"w02", "w01"}},
		{3, []string{"w02", "w01", "w04"}},
		{4, []string{"w02", "w01", "w04", "w06"}},
		{20, []string{"w02", "w01", "w04", "w06", "w07"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("max %d", tt.maxSize), func(t *testing.T) {
			got := ids(Candidates(c, progress, tt.maxSize, now))
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("Candidates = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildKeepsRecentlyForgotten(t *testing.T) {
	c := testCatalog(t, 10)
	progress := models.ProgressMap{"w09": forgotten(now.Add(-5 * time.Hour))}

	b := NewBuilder(c, 1)
	for i := 0; i < 20; i++ {
		got := b.Build(progress, 1, now)
		if len(got) != 1 || got[0].ID != "w09" {
			t.Fatalf("Build(1) = %v, want [w09]", ids(got))
		}
	}
}

func TestBuildShufflesDeterministically(t *testing.T) {
	c := testCatalog(t, 12)
	a := ids(NewBuilder(c, 42).Build(models.ProgressMap{}, 12, now))
	b := ids(NewBuilder(c, 42).Build(models.ProgressMap{}, 12, now))
	if fmt.Sprint(a) != fmt.Sprint(b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
	if len(a) != 12 {
		t.Errorf("len = %d, want 12", len(a))
	}
}

func TestBuildReturnsAllWhenFewerCandidates(t *testing.T) {
	c := testCatalog(t, 3)
	got := NewBuilder(c, 7).Build(models.ProgressMap{}, 20, now)
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}
