package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite has a single writer; one connection keeps every statement ordered
	// and makes ":memory:" databases behave as one database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &DB{db}, nil
}

// EnsureSchema creates the Registro table if it is missing. It is safe to
// call on every open.
func (db *DB) EnsureSchema() error {
	queries := []string{
		`PRAGMA journal_mode=WAL`,

		// AUTOINCREMENT keeps ids from being reused after a delete.
		`CREATE TABLE IF NOT EXISTS Registro (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nombre TEXT NOT NULL
		)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return &StorageError{Kind: KindSchema, Op: "ensure schema", Err: err}
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
