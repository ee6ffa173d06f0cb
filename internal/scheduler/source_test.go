package scheduler

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/frenchie/internal/catalog"
	"github.com/example/frenchie/internal/database"
	"github.com/example/frenchie/internal/storage"
)

func TestDatabaseSource(t *testing.T) {
	ctx := context.Background()
	db, err := database.Connect(database.Config{Type: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	c, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}

	// alice only has a streak, bob has an empty progress map
	parked := `{"version":2,"entries":{}}`
	if err := database.NewKeyValueRepository(db, "alice").Set(ctx, storage.StreakKey, `{"currentStreak":1,"longestStreak":1}`); err != nil {
		t.Fatal(err)
	}
	if err := database.NewKeyValueRepository(db, "bob").Set(ctx, storage.ProgressKey, parked); err != nil {
		t.Fatal(err)
	}

	src := NewDatabaseSource(db, c, storage.Options{LoadTimeout: time.Second})
	learners, err := src.Learners(ctx)
	if err != nil {
		t.Fatalf("Learners: %v", err)
	}
	if len(learners) != 2 {
		t.Fatalf("learners = %v", learners)
	}

	count, err := src.DueCount(ctx, "bob")
	if err != nil {
		t.Fatalf("DueCount: %v", err)
	}
	if count != c.Len() {
		t.Errorf("DueCount = %d, want %d", count, c.Len())
	}
}

func TestDatabaseSourceLeavesLegacyProgressAlone(t *testing.T) {
	ctx := context.Background()
	db, err := database.Connect(database.Config{Type: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	c, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}

	repo := database.NewKeyValueRepository(db, "carol")
	legacy := `{"` + c.Items()[0].ID + `":{"forgotCount":1,"lastReviewed":1704067200000}}`
	if err := repo.Set(ctx, storage.ProgressKey, legacy); err != nil {
		t.Fatal(err)
	}

	src := NewDatabaseSource(db, c, storage.Options{LoadTimeout: time.Second})
	if _, err := src.DueCount(ctx, "carol"); err != nil {
		t.Fatalf("DueCount: %v", err)
	}

	value, _, err := repo.Get(ctx, storage.ProgressKey)
	if err != nil {
		t.Fatal(err)
	}
	if value != legacy {
		t.Errorf("stored progress rewritten to %s", value)
	}
}
