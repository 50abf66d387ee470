package service

import (
	"context"
	"fmt"

	"loopa-api/internal/features/spotlight/domain"
	"loopa-api/internal/features/spotlight/ports"
)

// SpotlightServiceImpl implements ports.SpotlightService.
type SpotlightServiceImpl struct {
	repo ports.SpotlightRepository
}

// NewSpotlightService creates a new SpotlightServiceImpl.
func NewSpotlightService(repo ports.SpotlightRepository) *SpotlightServiceImpl {
	return &SpotlightServiceImpl{
		repo: repo,
	}
}

// SetSpotlight creates and saves a new spotlight.
func (s *SpotlightServiceImpl) SetSpotlight(ctx context.Context, designID, headline, tagline string, kind domain.SpotlightKind, duration int) error {
	spotlight, err := domain.NewSpotlight(designID, headline, tagline, kind, duration)
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, spotlight); err != nil {
		return fmt.Errorf("service: failed to save spotlight: %w", err)
	}

	return nil
}

// GetSpotlight retrieves the current spotlight.
func (s *SpotlightServiceImpl) GetSpotlight(ctx context.Context) (*domain.Spotlight, error) {
	spotlight, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get spotlight: %w", err)
	}

	return spotlight, nil
}

// RemoveSpotlight deletes the current spotlight.
func (s *SpotlightServiceImpl) RemoveSpotlight(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("service: failed to remove spotlight: %w", err)
	}

	return nil
}
