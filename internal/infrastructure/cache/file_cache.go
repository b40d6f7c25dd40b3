package cache

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"truckservice/internal/clock"
)

// Store is a TTL-based serialized-blob cache. Each key maps to one file under
// the given cache directory, holding the payload and the write timestamp.
// Reads after the TTL window, and corrupt blobs, are silent misses: the
// tabular source files stay authoritative, so a broken cache is never worth
// surfacing. The directory is a parameter because every category carries its
// own cache/ subfolder.

type Store struct {
	ttl   time.Duration
	clock clock.Clock
}

type entry struct {
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
}

func NewStore(ttl time.Duration, clk clock.Clock) *Store {
	return &Store{ttl: ttl, clock: clk}
}

// Get returns the cached payload for key when it exists and is fresh.
func (s *Store) Get(dir, key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(dir, key))
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		log.Printf("[cache] corrupt entry %s treated as miss: %v", key, err)
		return nil, false
	}
	if s.clock.Now().Unix()-e.Timestamp >= int64(s.ttl.Seconds()) {
		return nil, false
	}
	return e.Payload, true
}

// Put writes the payload for key. Failures are logged and swallowed: a cache
// write must never fail the caller.
func (s *Store) Put(dir, key string, payload []byte) {
	e := entry{Payload: payload, Timestamp: s.clock.Now().Unix()}
	data, err := json.Marshal(e)
	if err != nil {
		log.Printf("[cache] marshal %s failed: %v", key, err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[cache] mkdir %s failed: %v", dir, err)
		return
	}
	if err := os.WriteFile(s.path(dir, key), data, 0o644); err != nil {
		log.Printf("[cache] write %s failed: %v", key, err)
	}
}

// Invalidate drops the entry for key, if any.
func (s *Store) Invalidate(dir, key string) {
	if err := os.Remove(s.path(dir, key)); err != nil && !os.IsNotExist(err) {
		log.Printf("[cache] invalidate %s failed: %v", key, err)
	}
}

func (s *Store) path(dir, key string) string {
	return filepath.Join(dir, key+".json")
}
