package domain

import (
	"math"
	"time"

	orderdomain "loopa-api/internal/features/orders/domain"
)

// DesignSalesStats accumulates sales figures for one creator design.
type DesignSalesStats struct {
	// DesignID identifies the design.
	DesignID string `json:"design_id"`
	// UnitsSold is the cumulative quantity across all qualifying order lines.
	UnitsSold float64 `json:"units_sold"`
	// Revenue is the cumulative gross (unit price times quantity).
	Revenue float64 `json:"revenue"`
	// CreatorEarnings is the amount attributed to the design's creator.
	CreatorEarnings float64 `json:"creator_earnings"`
	// LoopaCut is the amount retained by the platform. Under the fixed model
	// it is computed independently of revenue and the two need not reconcile.
	LoopaCut float64 `json:"loopa_cut"`
	// LastSaleAt is the most recent dated order that sold this design.
	// The zero value means no contributing order carried a usable date and
	// is left out of the JSON encoding entirely.
	LastSaleAt time.Time `json:"last_sale_at,omitzero"`
}

// OverallStats summarizes sales across every design.
type OverallStats struct {
	// TotalOrders counts all orders in the input, including orders that
	// contributed no qualifying line.
	TotalOrders          int     `json:"total_orders"`
	TotalUnits           float64 `json:"total_units"`
	TotalRevenue         float64 `json:"total_revenue"`
	TotalCreatorEarnings float64 `json:"total_creator_earnings"`
	TotalLoopaCut        float64 `json:"total_loopa_cut"`
}

// ComputeDesignStats folds an order history into per-design sales statistics
// under the given payout policy. It is a pure single pass: inputs are never
// mutated and malformed numeric or date fields degrade to safe defaults
// instead of producing an error. Lines without a design id are skipped.
func ComputeDesignStats(orders []orderdomain.Order, policy PayoutPolicy) map[string]*DesignSalesStats {
	stats := make(map[string]*DesignSalesStats)
	share := policy.Share()

	for _, order := range orders {
		// The order date is read once and reused for every line in it.
		saleAt := order.CreatedAt

		for _, item := range order.Items {
			if item.DesignID == "" {
				continue
			}

			// A recorded line represents at least one unit.
			qty := finiteOr(item.Quantity, 1)
			if qty < 1 {
				qty = 1
			}
			price := finiteOr(item.UnitPrice, 0)
			if price < 0 {
				price = 0
			}
			lineRevenue := price * qty

			entry, ok := stats[item.DesignID]
			if !ok {
				entry = &DesignSalesStats{DesignID: item.DesignID}
				stats[item.DesignID] = entry
			}

			entry.UnitsSold += qty
			entry.Revenue += lineRevenue

			switch policy.Model {
			case PayoutModelFixed:
				entry.CreatorEarnings += qty * policy.CreatorPerUnit
				entry.LoopaCut += qty * policy.PlatformPerUnit
			default:
				// Recomputed from the cumulative revenue rather than
				// accumulated per line, so the split of a fold always equals
				// the split of its total.
				entry.CreatorEarnings = entry.Revenue * share
				entry.LoopaCut = entry.Revenue - entry.CreatorEarnings
			}

			entry.LastSaleAt = laterSale(entry.LastSaleAt, saleAt)
		}
	}

	return stats
}

// ComputeOverallStats folds an order history into a single summary record.
// TotalOrders counts the raw input length; everything else is the sum of the
// corresponding per-design field.
func ComputeOverallStats(orders []orderdomain.Order, policy PayoutPolicy) OverallStats {
	overall := OverallStats{
		TotalOrders: len(orders),
	}

	for _, entry := range ComputeDesignStats(orders, policy) {
		overall.TotalUnits += entry.UnitsSold
		overall.TotalRevenue += entry.Revenue
		overall.TotalCreatorEarnings += entry.CreatorEarnings
		overall.TotalLoopaCut += entry.LoopaCut
	}

	return overall
}

// laterSale keeps the later of two sale timestamps, preferring a dated value
// over the zero value. Ties resolve to the newer observation.
func laterSale(existing, candidate time.Time) time.Time {
	if existing.IsZero() {
		return candidate
	}
	if candidate.IsZero() {
		return existing
	}
	if candidate.Before(existing) {
		return existing
	}
	return candidate
}

// finiteOr returns v unless it is NaN or infinite, in which case it returns
// the fallback.
func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
