// Package storage provides durable key-value persistence for session state.
// SQLite (pure-Go modernc.org/sqlite) is the default backend; PostgreSQL is
// selected by a postgres:// DSN; an in-memory store backs sessions when no
// database can be opened.
package storage

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one stored key/value pair.
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// KV is the persistence capability the overworld needs.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Entries lists stored pairs whose key starts with prefix, sorted by key.
	Entries(prefix string) ([]Entry, error)

	// Close releases the underlying resources.
	Close() error
}

// Open opens the store described by dsn.
// postgres:// and postgresql:// URLs use PostgreSQL; anything else is a
// SQLite file path (a leading ~ expands to the home directory).
func Open(dsn string) (KV, error) {
	if isPostgresDSN(dsn) {
		return OpenPostgres(dsn)
	}
	return OpenSQLite(dsn)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
