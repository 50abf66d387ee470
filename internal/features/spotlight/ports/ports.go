package ports

import (
	"context"

	"loopa-api/internal/features/spotlight/domain"
)

// SpotlightService defines the primary port for spotlight operations.
type SpotlightService interface {
	SetSpotlight(ctx context.Context, designID, headline, tagline string, kind domain.SpotlightKind, duration int) error
	GetSpotlight(ctx context.Context) (*domain.Spotlight, error)
	RemoveSpotlight(ctx context.Context) error
}

// SpotlightRepository defines the secondary port for spotlight storage.
type SpotlightRepository interface {
	Save(ctx context.Context, spotlight *domain.Spotlight) error
	Get(ctx context.Context) (*domain.Spotlight, error)
	Delete(ctx context.Context) error
}
