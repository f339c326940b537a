package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tahcohcat/puravida-web/internal/logger"
)

type DB struct {
	*sqlx.DB
}

// NewDB opens the sqlite file at path and makes sure the schema exists.
// ":memory:" is accepted for tests.
func NewDB(path string) (*DB, error) {
	if path == "" {
		path = "puravida.db" // Default SQLite file
	}

	dsn := path
	if path != ":memory:" {
		dsn = path + "?_busy_timeout=5000"
	}

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// a single connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	dbWrapper := &DB{DB: db}

	if err := dbWrapper.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	logger.New().WithField("path", path).Debug("database connection established and tables initialized")
	return dbWrapper, nil
}

func (db *DB) createTables() error {
	kvTable := `
	CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.Exec(kvTable); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
