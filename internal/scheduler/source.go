package scheduler

import (
	"context"
	"time"

	"github.com/example/frenchie/internal/catalog"
	"github.com/example/frenchie/internal/database"
	"github.com/example/frenchie/internal/learning"
	"github.com/example/frenchie/internal/storage"
	"github.com/jmoiron/sqlx"
)

// DatabaseSource reads learners and their progress from the key-value table
type DatabaseSource struct {
	db      *sqlx.DB
	catalog *catalog.Catalog
	opts    storage.Options
}

// NewDatabaseSource creates a DueSource over db
func NewDatabaseSource(db *sqlx.DB, c *catalog.Catalog, opts storage.Options) *DatabaseSource {
	return &DatabaseSource{db: db, catalog: c, opts: opts}
}

// Learners returns every learner with stored state
func (d *DatabaseSource) Learners(ctx context.Context) ([]string, error) {
	return database.Learners(ctx, d.db)
}

// DueCount reads learner's progress and counts the due cards. Legacy records
// are upgraded in memory only; the learner's own sessions write them back.
func (d *DatabaseSource) DueCount(ctx context.Context, learner string) (int, error) {
	store := storage.New(database.NewKeyValueRepository(d.db, learner), d.opts)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store.Close(closeCtx)
	}()

	svc := learning.NewService(d.catalog, store, learning.Options{})
	return svc.DueCount(svc.ReadProgress(ctx)), nil
}
