package database

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

var (
	db   *sql.DB
	once sync.Once
)

// Config holds database configuration
type Config struct {
	Path string
}

// Init opens the sqlite database used for the geocode cache and applies
// pragmas. Safe to call more than once; only the first call opens.
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		db, err = sql.Open("sqlite", cfg.Path)
		if err != nil {
			return
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)

		// WAL mode for concurrent readers during request handling
		_, err = db.Exec("PRAGMA journal_mode=WAL")
		if err != nil {
			return
		}

		err = db.Ping()
		if err != nil {
			return
		}

		log.Printf("Database initialized: %s", cfg.Path)
	})

	return err
}

// GetDB returns the database instance
func GetDB() *sql.DB {
	if db == nil {
		log.Fatal("Database not initialized. Call Init() first.")
	}
	return db
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// Migrate creates the geocode cache schema if it does not exist.
func Migrate(conn *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS site_geocodes (
			site_name   TEXT PRIMARY KEY,
			latitude    REAL NOT NULL,
			longitude   REAL NOT NULL,
			elevation_m REAL,
			updated_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := conn.Exec(query); err != nil {
		return fmt.Errorf("failed to create site_geocodes table: %w", err)
	}
	return nil
}

// Transaction executes a function within a database transaction
func Transaction(fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
