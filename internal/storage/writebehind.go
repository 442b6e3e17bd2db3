package storage

import (
	"sync"

	"github.com/charmbracelet/log"
)

// WriteBehind wraps a KV so that Set returns without waiting for the
// database. Only the latest value per key is kept; a background goroutine
// flushes pending values. Get sees pending values before they land.
type WriteBehind struct {
	kv     KV
	logger *log.Logger

	mu      sync.Mutex
	pending map[string]string

	flushMu sync.Mutex // serializes writes to kv

	wake chan struct{}
	done chan struct{}
	wg   sync.WaitGroup

	closeOnce sync.Once
}

// NewWriteBehind starts the flusher goroutine for kv.
// A nil logger discards write errors.
func NewWriteBehind(kv KV, logger *log.Logger) *WriteBehind {
	w := &WriteBehind{
		kv:      kv,
		logger:  logger,
		pending: make(map[string]string),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

func (w *WriteBehind) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.wake:
			//nolint:errcheck // Errors are logged by Flush
			w.Flush()
		case <-w.done:
			//nolint:errcheck // Errors are logged by Flush
			w.Flush()
			return
		}
	}
}

// Set records value for key and schedules a flush. It never blocks on I/O.
func (w *WriteBehind) Set(key, value string) error {
	w.mu.Lock()
	w.pending[key] = value
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default: // a flush is already scheduled
	}
	return nil
}

// Get returns the pending value for key if any, otherwise the stored one.
func (w *WriteBehind) Get(key string) (string, bool, error) {
	w.mu.Lock()
	v, ok := w.pending[key]
	w.mu.Unlock()
	if ok {
		return v, true, nil
	}
	return w.kv.Get(key)
}

// Delete drops any pending value and removes key from the store.
func (w *WriteBehind) Delete(key string) error {
	w.flushMu.Lock()
	defer w.flushMu.Unlock()

	w.mu.Lock()
	delete(w.pending, key)
	w.mu.Unlock()

	return w.kv.Delete(key)
}

// Entries flushes pending writes and lists the store.
func (w *WriteBehind) Entries(prefix string) ([]Entry, error) {
	//nolint:errcheck // Errors are logged by Flush
	w.Flush()
	return w.kv.Entries(prefix)
}

// Flush writes every pending value synchronously.
// Values stay visible to Get until they are written. A failed write is
// logged and dropped; the first error is returned.
func (w *WriteBehind) Flush() error {
	w.flushMu.Lock()
	defer w.flushMu.Unlock()

	w.mu.Lock()
	batch := make(map[string]string, len(w.pending))
	for k, v := range w.pending {
		batch[k] = v
	}
	w.mu.Unlock()

	var first error
	for k, v := range batch {
		err := w.kv.Set(k, v)

		w.mu.Lock()
		if cur, ok := w.pending[k]; ok && cur == v {
			delete(w.pending, k)
		}
		w.mu.Unlock()

		if err != nil {
			if w.logger != nil {
				w.logger.Warn("could not persist value", "key", k, "error", err)
			}
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// Close flushes pending writes, stops the flusher and closes the store.
func (w *WriteBehind) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.wg.Wait()
	})
	return w.kv.Close()
}

var _ KV = (*WriteBehind)(nil)
