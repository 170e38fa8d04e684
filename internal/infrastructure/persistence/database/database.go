// Package database provides the draft store database connection. Local
// SQLite is the default; a Turso (libsql) database takes over when the
// tenant has one configured.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/UniScopeHQ/composer-go/pkg/config"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Database wraps the draft store connection.
type Database struct {
	Conn     *sql.DB
	UseTurso bool
}

// New opens the draft database, preferring Turso when fully configured.
func New() (*Database, error) {
	var conn *sql.DB
	var err error
	var useTurso bool

	if config.TursoEnabled && config.TursoDatabase != "" && config.TursoToken != "" {
		connStr := config.TursoDatabase + "?authToken=" + config.TursoToken
		conn, err = sql.Open("libsql", connStr)
		if err != nil {
			return nil, fmt.Errorf("turso connection failed: %w", err)
		}
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("turso ping failed: %w", err)
		}
		useTurso = true
	} else {
		dbDir := filepath.Dir(config.DraftDBPath)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}

		conn, err = sql.Open("sqlite3", config.DraftDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("SQLite database ping failed: %w", err)
		}
	}

	conn.SetMaxOpenConns(config.DBMaxOpenConns)
	conn.SetMaxIdleConns(config.DBMaxIdleConns)
	conn.SetConnMaxLifetime(time.Duration(config.DBConnMaxLifetimeMinutes) * time.Minute)
	conn.SetConnMaxIdleTime(time.Duration(config.DBConnMaxIdleMinutes) * time.Minute)

	db := &Database{Conn: conn, UseTurso: useTurso}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

// migrate creates the draft schema if it does not exist.
func (db *Database) migrate() error {
	schema := `CREATE TABLE IF NOT EXISTS drafts (
		author_id TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`
	if _, err := db.Conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create drafts table: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (db *Database) Close() error {
	return db.Conn.Close()
}
