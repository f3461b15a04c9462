package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vitalog/vitalog/internal/storage"
	"github.com/vitalog/vitalog/internal/storage/providers/memory"
)

// setupTestStore returns a store over a fresh in-memory medium with a
// deterministic, strictly-advancing clock.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store := New(memory.New())

	base := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return store
}

var errMediumDown = errors.New("medium down")

// brokenAdapter fails every operation, optionally serving reads from a
// wrapped snapshot to exercise the read-vs-write failure policies.
type brokenAdapter struct {
	reads storage.Adapter // nil means reads fail too
}

func (b *brokenAdapter) Get(ctx context.Context, key string) (string, error) {
	if b.reads != nil {
		return b.reads.Get(ctx, key)
	}
	return "", errMediumDown
}

func (b *brokenAdapter) Set(context.Context, string, string) error { return errMediumDown }
func (b *brokenAdapter) Remove(context.Context, string) error      { return errMediumDown }
func (b *brokenAdapter) Ping(context.Context) error                { return errMediumDown }
func (b *brokenAdapter) Close() error                              { return nil }
