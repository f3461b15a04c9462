package database

import (
	"context"

	"github.com/vitalog/vitalog/internal/entities"
	"github.com/vitalog/vitalog/internal/validation"
)

// GetProfile returns the singleton profile, or nil if initialization
// has never run and the medium holds no profile.
func (s *Store) GetProfile(ctx context.Context) (*entities.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var profile entities.UserProfile
	if !s.readDoc(ctx, KeyProfile, &profile) {
		return nil, nil
	}
	return &profile, nil
}

// SaveProfile validates and persists the given profile as the new
// singleton, replacing the stored one whole. Merging a partial update
// onto the current profile is the caller's job; the store only ever
// replaces. The id is forced to 1 and updated_at is refreshed.
func (s *Store) SaveProfile(ctx context.Context, profile entities.UserProfile) (*entities.UserProfile, error) {
	if violations := validation.CheckProfile(profile); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	profile.ID = 1
	profile.UpdatedAt = now
	if profile.CreatedAt.IsZero() {
		var existing entities.UserProfile
		if s.readDoc(ctx, KeyProfile, &existing) {
			profile.CreatedAt = existing.CreatedAt
		} else {
			profile.CreatedAt = now
		}
	}

	if err := s.writeDoc(ctx, KeyProfile, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
