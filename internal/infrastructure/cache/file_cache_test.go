package cache

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"truckservice/internal/clock"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func TestStore_PutGet(t *testing.T) {
	dir := t.TempDir()
	clk := &stepClock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
	s := NewStore(time.Hour, clk)

	if _, hit := s.Get(dir, "works"); hit {
		t.Fatal("empty cache must miss")
	}

	payload := []byte(`[{"name":"Осмотр ТС","norm_hours":0.4}]`)
	s.Put(dir, "works", payload)

	got, hit := s.Get(dir, "works")
	if !hit {
		t.Fatal("expected hit right after put")
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mismatch: %s", got)
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	dir := t.TempDir()
	clk := &stepClock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
	s := NewStore(time.Hour, clk)

	s.Put(dir, "materials", []byte(`["ВД-40"]`))

	clk.now = clk.now.Add(59 * time.Minute)
	if _, hit := s.Get(dir, "materials"); !hit {
		t.Fatal("entry inside the TTL window must hit")
	}

	clk.now = clk.now.Add(2 * time.Minute)
	if _, hit := s.Get(dir, "materials"); hit {
		t.Fatal("entry past the TTL window must miss")
	}
}

func TestStore_CorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(time.Hour, clock.NewFixed(time.Now()))

	s.Put(dir, "works", []byte(`[]`))

	// Clobber the file with garbage.
	if err := writeGarbage(dir, "works"); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	if _, hit := s.Get(dir, "works"); hit {
		t.Fatal("corrupt entry must be a miss")
	}
}

func TestStore_Invalidate(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(time.Hour, clock.NewFixed(time.Now()))

	s.Put(dir, "works", []byte(`[]`))
	s.Invalidate(dir, "works")
	if _, hit := s.Get(dir, "works"); hit {
		t.Fatal("invalidated entry must miss")
	}

	// Invalidating a missing key is a no-op.
	s.Invalidate(dir, "never-existed")
}

func writeGarbage(dir, key string) error {
	return os.WriteFile(filepath.Join(dir, key+".json"), []byte("{not json"), 0o644)
}
