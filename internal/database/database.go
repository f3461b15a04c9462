// Package database is the record store: keyed collections of health
// records persisted as JSON documents through a storage adapter. It
// owns all persisted state; no other package writes to the medium.
//
// Four independently-keyed documents are maintained: the date-keyed
// daily-entry map, the singleton profile, the id-keyed medicine map,
// and the append-only dose history log.
package database

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/vitalog/vitalog/internal/entities"
	"github.com/vitalog/vitalog/internal/storage"
)

// Storage keys for the four persisted documents.
const (
	KeyEntries     = "vitalog:entries"
	KeyProfile     = "vitalog:profile"
	KeyMedicines   = "vitalog:medicines"
	KeyDoseHistory = "vitalog:dose_history"
)

// Store provides CRUD and range queries over the persisted records.
//
// Every mutation is a read-modify-write over a whole JSON document, so
// a store-level mutex serializes them; without it two in-flight writes
// to the same document would silently lose one update.
type Store struct {
	adapter storage.Adapter

	mu sync.Mutex

	// lastEntryID keeps timestamp-derived entry ids strictly increasing
	// even when two writes land in the same millisecond.
	lastEntryID int64

	// now is swappable in tests.
	now func() time.Time
}

// New creates a record store over the given adapter.
func New(adapter storage.Adapter) *Store {
	return &Store{
		adapter: adapter,
		now:     time.Now,
	}
}

// Initialize ensures the entry map and the singleton profile exist,
// writing an empty map and a default profile if absent. Idempotent;
// called on every app start. Unlike reads later on, initialization must
// guarantee a writable medium and therefore surfaces storage failures.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.adapter.Get(ctx, KeyEntries); errors.Is(err, storage.ErrNotFound) {
		if err := s.adapter.Set(ctx, KeyEntries, "{}"); err != nil {
			return &StorageUnavailableError{Op: "initialize entries", Err: err}
		}
	} else if err != nil {
		return &StorageUnavailableError{Op: "initialize entries", Err: err}
	}

	if _, err := s.adapter.Get(ctx, KeyProfile); errors.Is(err, storage.ErrNotFound) {
		profile := entities.DefaultProfile(s.now())
		if err := s.writeDoc(ctx, KeyProfile, profile); err != nil {
			return &StorageUnavailableError{Op: "initialize profile", Err: err}
		}
		log.Printf("Materialized default profile")
	} else if err != nil {
		return &StorageUnavailableError{Op: "initialize profile", Err: err}
	}

	return nil
}

// Ping reports whether the underlying medium is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.adapter.Ping(ctx)
}

// readDoc unmarshals the document at key into out. A missing key or a
// failing medium both leave out untouched and return false; medium
// failures are logged but deliberately not propagated on read paths.
func (s *Store) readDoc(ctx context.Context, key string, out any) bool {
	raw, err := s.adapter.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return false
	}
	if err != nil {
		log.Printf("WARNING: storage read failed for %s, treating as absent: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("WARNING: corrupt document at %s, treating as absent: %v", key, err)
		return false
	}
	return true
}

// writeDoc marshals v and stores it at key. Write failures propagate.
func (s *Store) writeDoc(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.adapter.Set(ctx, key, string(raw)); err != nil {
		return &StorageUnavailableError{Op: "write " + key, Err: err}
	}
	return nil
}
