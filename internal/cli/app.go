package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/example/frenchie/internal/catalog"
	"github.com/example/frenchie/internal/config"
	"github.com/example/frenchie/internal/database"
	"github.com/example/frenchie/internal/learning"
	"github.com/example/frenchie/internal/storage"
	"github.com/jmoiron/sqlx"
)

// App holds the components a command works with
type App struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	DB      *sqlx.DB // nil for in-memory runs
	Store   *storage.Store
	Service *learning.Service
}

// NewApp loads the catalog, opens the database and builds the learner's service.
// With memory set, progress lives in process memory only.
func NewApp(cfg *config.Config, memory bool) (*App, error) {
	c, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	a := &App{Config: cfg, Catalog: c}

	var kv storage.KeyValue
	if memory {
		kv = storage.NewMemoryStore()
	} else {
		db, err := database.Connect(database.Config{Type: cfg.DBType, Path: cfg.DBPath, URL: cfg.DatabaseURL})
		if err != nil {
			return nil, err
		}
		a.DB = db
		kv = database.NewKeyValueRepository(db, cfg.Learner)
	}

	loc, err := cfg.Location()
	if err != nil {
		a.closeDB()
		return nil, err
	}

	a.Store = storage.New(kv, a.storageOptions())
	a.Service = learning.NewService(c, a.Store, learning.Options{
		QueueSize: cfg.QueueSize,
		DailyGoal: cfg.DailyGoal,
		Location:  loc,
	})
	return a, nil
}

// NewMemoryApp builds an App over an in-memory store and the given catalog
func NewMemoryApp(cfg *config.Config, c *catalog.Catalog, opts learning.Options) *App {
	a := &App{Config: cfg, Catalog: c}
	a.Store = storage.New(storage.NewMemoryStore(), a.storageOptions())
	a.Service = learning.NewService(c, a.Store, opts)
	return a
}

func (a *App) storageOptions() storage.Options {
	return storage.Options{LoadTimeout: a.Config.LoadTimeout, SaveTimeout: a.Config.SaveTimeout}
}

// Close flushes pending saves and closes the database
func (a *App) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), a.Config.SaveTimeout)
	defer cancel()
	if a.Store != nil {
		if err := a.Store.Close(ctx); err != nil {
			log.Printf("Error flushing pending saves: %v", err)
		}
	}
	a.closeDB()
}

func (a *App) closeDB() {
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
		a.DB = nil
	}
}

// commandContext bounds a single command run or, in interactive commands, a
// single answer
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Minute)
}
