package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/sgmi/internal/config"
)

var db *sql.DB

var dbInitialized bool

// GetDB returns the database connection, initializing if needed
func GetDB() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}

	dbPath, err := GetDBPath()
	if err != nil {
		return nil, err
	}

	// Ensure the data directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// Open database connection
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Create tables on first connection. A failed init must not leave a
	// schemaless handle behind for the next caller.
	if !dbInitialized {
		if err := InitSchema(); err != nil {
			db.Close()
			db = nil
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		dbInitialized = true
	}

	return db, nil
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// GetDBPath returns the path to the database file.
// Resolution order: SGMI_DB_PATH, then database_dir from the config file,
// then the default ~/.sgmi/sgmi.db location.
func GetDBPath() (string, error) {
	if override := os.Getenv("SGMI_DB_PATH"); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	cfg, err := config.LoadConfig(home)
	if err != nil {
		cfg = nil
	}
	return dbPathFor(cfg, home), nil
}

func dbPathFor(cfg *config.Config, home string) string {
	if cfg != nil && cfg.DatabaseDir != "" {
		return filepath.Join(cfg.DatabaseDir, "sgmi.db")
	}
	return filepath.Join(home, ".sgmi", "sgmi.db")
}

// InitSchema creates the tables if they do not exist.
func InitSchema() error {
	if db == nil {
		return fmt.Errorf("database not open")
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
