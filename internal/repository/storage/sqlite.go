package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	Connection *sql.DB
}

// NewSQLite - opens the database file at path.
func NewSQLite(path string) (*SQLite, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &SQLite{Connection: conn}, nil
}

// AdminUsername is the profile seeded with the admin role on a new database.
const AdminUsername = "admin"

// Init - creates the schema if it does not exist yet and seeds the admin profile.
func (that *SQLite) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS profiles (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		role          TEXT NOT NULL DEFAULT 'user',
		language      TEXT NOT NULL DEFAULT 'English',
		notifications INTEGER NOT NULL DEFAULT 0
	)`

	_, err := that.Connection.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	seed := `INSERT OR IGNORE INTO profiles (username, email, role) VALUES (?, ?, 'admin')`

	if _, err = that.Connection.ExecContext(ctx, seed, AdminUsername, AdminUsername+"@example.com"); err != nil {
		return fmt.Errorf("can't seed admin profile: %w", err)
	}

	return nil
}

func (that *SQLite) Close() error {
	return that.Connection.Close()
}
