package storage

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
)

// gatedKV blocks Set until released, to observe pending values.
type gatedKV struct {
	*MemoryStore
	gate chan struct{}
	err  error

	mu   sync.Mutex
	sets int
}

func (g *gatedKV) Set(key, value string) error {
	<-g.gate
	g.mu.Lock()
	g.sets++
	g.mu.Unlock()
	if g.err != nil {
		return g.err
	}
	return g.MemoryStore.Set(key, value)
}

func TestWriteBehindReadYourWrites(t *testing.T) {
	kv := &gatedKV{MemoryStore: NewMemoryStore(), gate: make(chan struct{})}
	w := NewWriteBehind(kv, nil)

	// Set must return even though the backend is blocked
	if err := w.Set("k", "v1"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	v, ok, _ := w.Get("k")
	if !ok || v != "v1" {
		t.Errorf("Get() = %q, %v; expected pending value", v, ok)
	}

	close(kv.gate)
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	stored, ok, _ := kv.MemoryStore.Get("k")
	if !ok || stored != "v1" {
		t.Errorf("Backend value = %q, %v; expected v1 after Close", stored, ok)
	}
}

func TestWriteBehindKeepsLatest(t *testing.T) {
	kv := NewMemoryStore()
	w := NewWriteBehind(kv, nil)

	for _, v := range []string{"1", "2", "3"} {
		w.Set("k", v)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	v, _, _ := kv.Get("k")
	if v != "3" {
		t.Errorf("Stored %q, expected the latest value 3", v)
	}
	w.Close()
}

func TestWriteBehindFlushError(t *testing.T) {
	gate := make(chan struct{})
	close(gate)
	boom := errors.New("disk full")
	kv := &gatedKV{MemoryStore: NewMemoryStore(), gate: gate, err: boom}
	w := NewWriteBehind(kv, nil)
	defer w.Close()

	w.Set("k", "v")
	// The background flusher may already have consumed the value; either way
	// no error reaches the caller of Set.
	if err := w.Flush(); err != nil && !errors.Is(err, boom) {
		t.Errorf("Flush() = %v, expected nil or %v", err, boom)
	}
}

func TestWriteBehindDelete(t *testing.T) {
	kv := NewMemoryStore()
	kv.Set("k", "old")
	w := NewWriteBehind(kv, nil)
	defer w.Close()

	w.Set("k", "new")
	if err := w.Delete("k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	w.Flush()

	if _, ok, _ := w.Get("k"); ok {
		t.Error("Deleted key should not come back from a pending write")
	}
}

func TestWriteBehindOverSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "wb.db")
	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}

	w := NewWriteBehind(store, nil)
	w.Set("player.position", `{"x":1,"y":2}`)
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	reopened, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	v, ok, _ := reopened.Get("player.position")
	if !ok || v != `{"x":1,"y":2}` {
		t.Errorf("Get() = %q, %v; expected value flushed on Close", v, ok)
	}
}
