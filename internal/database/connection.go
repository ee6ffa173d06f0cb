package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Config selects the database backend
type Config struct {
	Type string // sqlite, postgres or mysql
	Path string // SQLite file
	URL  string // Postgres/MySQL DSN
}

// Connect establishes a connection to the database and makes sure the schema exists
func Connect(cfg Config) (*sqlx.DB, error) {
	driver, dsn, err := cfg.driver()
	if err != nil {
		return nil, err
	}

	if driver == "sqlite3" {
		// Create data directory if it doesn't exist
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite3" {
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (cfg Config) driver() (string, string, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "sqlite", "sqlite3":
		path := cfg.Path
		if path == "" {
			path = filepath.Join("data", "frenchie.db")
		}
		return "sqlite3", path, nil
	case "postgres", "postgresql":
		if cfg.URL == "" {
			return "", "", fmt.Errorf("DATABASE_URL is required for postgres")
		}
		return "postgres", cfg.URL, nil
	case "mysql":
		if cfg.URL == "" {
			return "", "", fmt.Errorf("DATABASE_URL is required for mysql")
		}
		return "mysql", cfg.URL, nil
	default:
		return "", "", fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema(db *sqlx.DB) error {
	var query string
	switch db.DriverName() {
	case "mysql":
		query = `
			CREATE TABLE IF NOT EXISTS kv_store (
				learner VARCHAR(191) NOT NULL,
				store_key VARCHAR(191) NOT NULL,
				store_value LONGTEXT NOT NULL,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (learner, store_key)
			)
		`
	default:
		query = `
			CREATE TABLE IF NOT EXISTS kv_store (
				learner TEXT NOT NULL,
				store_key TEXT NOT NULL,
				store_value TEXT NOT NULL,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (learner, store_key)
			)
		`
	}

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create kv_store table: %w", err)
	}
	return nil
}
