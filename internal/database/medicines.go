package database

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/vitalog/vitalog/internal/entities"
	"github.com/vitalog/vitalog/internal/validation"
)

// ListMedicines returns all medicines sorted by name (case-sensitive).
func (s *Store) ListMedicines(ctx context.Context) ([]entities.Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	medicines := s.loadMedicines(ctx)

	result := make([]entities.Medicine, 0, len(medicines))
	for _, m := range medicines {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// GetMedicine returns one medicine by id, or nil if absent.
func (s *Store) GetMedicine(ctx context.Context, id string) (*entities.Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	medicines := s.loadMedicines(ctx)
	m, ok := medicines[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// AddMedicine validates the record, assigns a fresh id and returns it.
// DosesTaken starts at zero unless the caller supplied a count.
func (s *Store) AddMedicine(ctx context.Context, medicine entities.Medicine) (string, error) {
	if violations := validation.CheckMedicine(medicine); len(violations) > 0 {
		return "", &ValidationError{Violations: violations}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	medicines := s.loadMedicines(ctx)

	now := s.now()
	medicine.ID = uuid.NewString()
	medicine.CreatedAt = now
	medicine.UpdatedAt = now
	medicines[medicine.ID] = medicine

	if err := s.writeDoc(ctx, KeyMedicines, medicines); err != nil {
		return "", err
	}
	return medicine.ID, nil
}

// UpdateMedicine merges the given fields onto the stored record,
// validates the merged result and refreshes updated_at. Fails with
// NotFoundError when the id does not exist.
func (s *Store) UpdateMedicine(ctx context.Context, id string, update entities.MedicineUpdate) (*entities.Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	medicines := s.loadMedicines(ctx)
	medicine, ok := medicines[id]
	if !ok {
		return nil, &NotFoundError{Kind: "medicine", ID: id}
	}

	applyMedicineUpdate(&medicine, update)

	if violations := validation.CheckMedicine(medicine); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	medicine.UpdatedAt = s.now()
	medicines[id] = medicine

	if err := s.writeDoc(ctx, KeyMedicines, medicines); err != nil {
		return nil, err
	}
	return &medicine, nil
}

// RemoveMedicine deletes the record unconditionally. Absent ids are not
// an error. Dose-history entries referencing the medicine are kept; the
// history is an audit trail, not an owned child.
func (s *Store) RemoveMedicine(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	medicines := s.loadMedicines(ctx)
	if _, ok := medicines[id]; !ok {
		return nil
	}
	delete(medicines, id)

	return s.writeDoc(ctx, KeyMedicines, medicines)
}

func applyMedicineUpdate(m *entities.Medicine, update entities.MedicineUpdate) {
	if update.Name != nil {
		m.Name = *update.Name
	}
	if update.Dosage != nil {
		m.Dosage = *update.Dosage
	}
	if update.Frequency != nil {
		m.Frequency = *update.Frequency
	}
	if update.Times != nil {
		m.Times = update.Times
	}
	if update.Instructions != nil {
		m.Instructions = *update.Instructions
	}
	if update.TotalDoses != nil {
		m.TotalDoses = *update.TotalDoses
	}
	if update.DosesTaken != nil {
		m.DosesTaken = *update.DosesTaken
	}
}

// loadMedicines reads the medicine map, returning an empty map when the
// document is absent or the medium is down. Callers hold s.mu.
func (s *Store) loadMedicines(ctx context.Context) map[string]entities.Medicine {
	medicines := make(map[string]entities.Medicine)
	s.readDoc(ctx, KeyMedicines, &medicines)
	return medicines
}
