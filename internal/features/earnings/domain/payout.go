package domain

import "math"

// PayoutModel selects how gross revenue is split between a creator and Loopa.
type PayoutModel string

const (
	// PayoutModelFixed pays flat per-unit amounts independent of sale price.
	PayoutModelFixed PayoutModel = "fixed"
	// PayoutModelProportional splits revenue by a configurable share.
	PayoutModelProportional PayoutModel = "proportional"
)

const (
	// MinCreatorShare is the lowest creator share the proportional model allows.
	MinCreatorShare = 0.05
	// MaxCreatorShare is the highest creator share the proportional model allows.
	MaxCreatorShare = 0.95
	// DefaultCreatorShare is used when the configured share is not a finite number.
	DefaultCreatorShare = 0.70
)

// PayoutPolicy describes how creator earnings are attributed per sale.
// Only the fields of the selected model are consulted.
type PayoutPolicy struct {
	// Model selects the payout variant.
	Model PayoutModel `json:"model"`
	// CreatorShare is the fraction of revenue paid to the creator under the
	// proportional model. Out-of-range values are clamped, never rejected.
	CreatorShare float64 `json:"creator_share,omitempty"`
	// CreatorPerUnit is the flat amount paid to the creator per unit sold
	// under the fixed model.
	CreatorPerUnit float64 `json:"creator_per_unit,omitempty"`
	// PlatformPerUnit is the flat amount retained by Loopa per unit sold
	// under the fixed model.
	PlatformPerUnit float64 `json:"platform_per_unit,omitempty"`
}

// Share returns the effective creator share for the proportional model,
// clamped to [MinCreatorShare, MaxCreatorShare]. A non-finite configured
// share falls back to DefaultCreatorShare. Clamping is silent here; callers
// that care can compare against CreatorShare and log.
func (p PayoutPolicy) Share() float64 {
	share := p.CreatorShare
	if math.IsNaN(share) || math.IsInf(share, 0) {
		share = DefaultCreatorShare
	}
	if share < MinCreatorShare {
		return MinCreatorShare
	}
	if share > MaxCreatorShare {
		return MaxCreatorShare
	}
	return share
}
