package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := OpenSQLite(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	// Missing key
	_, ok, err := store.Get("player.position")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if ok {
		t.Error("Get() should report a missing key")
	}

	if err := store.Set("player.position", `{"x":8,"y":16}`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	// Overwrite
	if err := store.Set("player.position", `{"x":24,"y":16}`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	v, ok, err := store.Get("player.position")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ok || v != `{"x":24,"y":16}` {
		t.Errorf("Get() = %q, %v; expected the latest value", v, ok)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	store, err = OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	v, ok, err := store.Get("k")
	if err != nil || !ok || v != "v" {
		t.Errorf("Get() after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestStoreDeleteAndEntries(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	store.Set("player.position:bob", "b")
	store.Set("player.position:alice", "a")
	store.Set("other", "o")

	entries, err := store.Entries("player.position:")
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Key != "player.position:alice" || entries[1].Key != "player.position:bob" {
		t.Errorf("Entries not sorted by key: %v", entries)
	}

	if err := store.Delete("player.position:bob"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := store.Delete("never-existed"); err != nil {
		t.Errorf("Delete() of a missing key failed: %v", err)
	}

	all, _ := store.Entries("")
	if len(all) != 2 {
		t.Errorf("Expected 2 entries after delete, got %d", len(all))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Nested directories are created on open
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("OVERWORLD_TEST_POSTGRES")
	if dsn == "" {
		t.Skip("OVERWORLD_TEST_POSTGRES not set")
	}

	store, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*PostgresStore); !ok {
		t.Fatalf("Open() returned %T, expected *PostgresStore", store)
	}
	if err := store.Set("test.key", "1"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	defer store.Delete("test.key")

	v, ok, err := store.Get("test.key")
	if err != nil || !ok || v != "1" {
		t.Errorf("Get() = %q, %v, %v", v, ok, err)
	}
}
