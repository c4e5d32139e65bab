package store

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite"
)

const memoryPath = ":memory:"

// NewDB opens the SQLite database at path. Foreign keys are enforced on every
// connection. An in-memory database is pinned to a single connection so that
// every caller sees the same schema.
func NewDB(path string) (*sql.DB, error) {
	pragmas := url.Values{}
	pragmas.Add("_pragma", "foreign_keys(1)")
	pragmas.Add("_pragma", "busy_timeout(5000)")

	var dsn string
	if path == memoryPath || path == "" {
		dsn = "file::memory:?" + pragmas.Encode()
	} else {
		pragmas.Add("_pragma", "journal_mode(WAL)")
		dsn = "file:" + path + "?" + pragmas.Encode()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}

	if path == memoryPath || path == "" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database %q: %w", path, err)
	}

	return db, nil
}
