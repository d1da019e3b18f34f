package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS books
(
    id               TEXT PRIMARY KEY,
    title            TEXT     NOT NULL,
    author           TEXT     NOT NULL,
    year             INTEGER  NOT NULL DEFAULT 0,
    genre            TEXT     NOT NULL DEFAULT '',
    total_copies     INTEGER  NOT NULL DEFAULT 1,
    available_copies INTEGER  NOT NULL DEFAULT 1,
    created_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK (available_copies >= 0 AND available_copies <= total_copies)
);

CREATE INDEX IF NOT EXISTS idx_books_title_author ON books (title, author);

CREATE TABLE IF NOT EXISTS users
(
    id            TEXT PRIMARY KEY,
    username      TEXT     NOT NULL UNIQUE,
    role          TEXT     NOT NULL,
    password_hash TEXT     NOT NULL DEFAULT '',
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS loans
(
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id  TEXT NOT NULL,
    book_id  TEXT NOT NULL,
    title    TEXT NOT NULL DEFAULT '',
    due_date TEXT NOT NULL,
    UNIQUE (user_id, book_id)
);
`

// OpenSQLite opens a SQLite database and configures pragmas.
func OpenSQLite(path string) (*sqlx.DB, error) {
	conn, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	return conn, nil
}

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(conn *sqlx.DB) error {
	if _, err := conn.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
