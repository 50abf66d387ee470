package domain

import (
	"errors"
	"time"
)

// SpotlightKind represents the kind of promotion the spotlight carries.
type SpotlightKind string

const (
	SpotlightKindFeatured SpotlightKind = "FEATURED"
	SpotlightKindSale     SpotlightKind = "SALE"
	SpotlightKindDrop     SpotlightKind = "DROP"
)

var (
	ErrInvalidSpotlightKind = errors.New("invalid spotlight kind")
	ErrMissingDesignID      = errors.New("spotlight requires a design id")
)

// Spotlight represents the storefront-wide featured-design promotion.
type Spotlight struct {
	// DesignID is the design being promoted.
	DesignID string `json:"design_id"`
	// Headline is the promotion title shown on the storefront.
	Headline string `json:"headline"`
	// Tagline is the secondary promotion text.
	Tagline string `json:"tagline"`
	// Kind is the promotion kind (FEATURED, SALE, DROP).
	Kind SpotlightKind `json:"kind"`
	// Duration in seconds. 0 means permanent (until manually removed).
	Duration int `json:"duration,omitempty"`
	// CreatedAt is when the spotlight was set.
	CreatedAt time.Time `json:"created_at"`
}

// NewSpotlight creates a new Spotlight and validates it.
func NewSpotlight(designID, headline, tagline string, kind SpotlightKind, duration int) (*Spotlight, error) {
	if designID == "" {
		return nil, ErrMissingDesignID
	}

	if kind != SpotlightKindFeatured && kind != SpotlightKindSale && kind != SpotlightKindDrop {
		return nil, ErrInvalidSpotlightKind
	}

	return &Spotlight{
		DesignID:  designID,
		Headline:  headline,
		Tagline:   tagline,
		Kind:      kind,
		Duration:  duration,
		CreatedAt: time.Now(),
	}, nil
}
