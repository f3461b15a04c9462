package database

import (
	"context"
	"sort"
	"time"

	"github.com/vitalog/vitalog/internal/entities"
	"github.com/vitalog/vitalog/internal/validation"
)

// GetEntry returns the daily entry for date, or nil if none is stored.
func (s *Store) GetEntry(ctx context.Context, date string) (*entities.DailyEntry, error) {
	if violations := validation.CheckEntryDate(date); len(violations) > 0 {
		return nil, &InputError{Message: violations[0]}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadEntries(ctx)
	entry, ok := entries[date]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// UpsertEntry validates the metrics and writes the entry for date,
// replacing any existing record whole. The id and created_at are
// stamped fresh on every write; overwrite is replace, not merge.
func (s *Store) UpsertEntry(ctx context.Context, date string, waterML, calories, steps int) (*entities.DailyEntry, error) {
	if violations := validation.CheckEntryDate(date); len(violations) > 0 {
		return nil, &InputError{Message: violations[0]}
	}
	if violations := validation.CheckDailyEntry(waterML, calories, steps); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadEntries(ctx)

	now := s.now()
	entry := entities.DailyEntry{
		ID:        s.nextEntryID(now),
		Date:      date,
		WaterML:   waterML,
		Calories:  calories,
		Steps:     steps,
		CreatedAt: now,
	}
	entries[date] = entry

	if err := s.writeDoc(ctx, KeyEntries, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetEntriesInRange returns the stored entries with startDate <= date <=
// endDate, ascending by date. Dates with no entry are simply absent from
// the result.
func (s *Store) GetEntriesInRange(ctx context.Context, startDate, endDate string) ([]entities.DailyEntry, error) {
	if violations := validation.CheckEntryDate(startDate); len(violations) > 0 {
		return nil, &InputError{Message: "start " + violations[0]}
	}
	if violations := validation.CheckEntryDate(endDate); len(violations) > 0 {
		return nil, &InputError{Message: "end " + violations[0]}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadEntries(ctx)

	var result []entities.DailyEntry
	for date, entry := range entries {
		if date >= startDate && date <= endDate {
			result = append(result, entry)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result, nil
}

// nextEntryID derives a timestamp-based id that is strictly increasing
// across writes, so entries written within the same millisecond still
// get distinct ids. Callers hold s.mu.
func (s *Store) nextEntryID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastEntryID {
		id = s.lastEntryID + 1
	}
	s.lastEntryID = id
	return id
}

// loadEntries reads the entry map, returning an empty map when the
// document is absent or the medium is down. Callers hold s.mu.
func (s *Store) loadEntries(ctx context.Context) map[string]entities.DailyEntry {
	entries := make(map[string]entities.DailyEntry)
	s.readDoc(ctx, KeyEntries, &entries)
	return entries
}
