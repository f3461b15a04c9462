package database

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/vitalog/vitalog/internal/entities"
)

// DefaultDoseHistoryLimit caps GetDoseHistory results when the caller
// does not ask for a specific count.
const DefaultDoseHistoryLimit = 50

// RecordDose bumps the medicine's taken counter and appends a history
// entry. The counter update is best-effort: when the medicine has been
// deleted the history entry is still appended, keeping the audit trail
// complete for orphaned references.
//
// The two writes are not atomic across process crashes; within the
// process the store mutex keeps them ordered.
func (s *Store) RecordDose(ctx context.Context, medicineID string, doseHour int) (*entities.DoseHistoryEntry, error) {
	if doseHour < 0 || doseHour > 23 {
		return nil, &InputError{Message: "dose time must be an hour between 0 and 23"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	medicines := s.loadMedicines(ctx)
	if medicine, ok := medicines[medicineID]; ok {
		medicine.DosesTaken++
		medicine.UpdatedAt = s.now()
		medicines[medicineID] = medicine
		if err := s.writeDoc(ctx, KeyMedicines, medicines); err != nil {
			return nil, err
		}
	}

	history := s.loadDoseHistory(ctx)
	entry := entities.DoseHistoryEntry{
		ID:         uuid.NewString(),
		MedicineID: medicineID,
		DoseTime:   doseHour,
		TakenAt:    s.now(),
	}
	history = append(history, entry)

	if err := s.writeDoc(ctx, KeyDoseHistory, history); err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetDoseHistory returns the most recent intake confirmations, newest
// first, truncated to limit (DefaultDoseHistoryLimit when <= 0).
func (s *Store) GetDoseHistory(ctx context.Context, limit int) ([]entities.DoseHistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultDoseHistoryLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.loadDoseHistory(ctx)

	sort.Slice(history, func(i, j int) bool {
		return history[i].TakenAt.After(history[j].TakenAt)
	})
	if len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}

// loadDoseHistory reads the append-only log, returning an empty slice
// when the document is absent or the medium is down. Callers hold s.mu.
func (s *Store) loadDoseHistory(ctx context.Context) []entities.DoseHistoryEntry {
	var history []entities.DoseHistoryEntry
	s.readDoc(ctx, KeyDoseHistory, &history)
	return history
}
