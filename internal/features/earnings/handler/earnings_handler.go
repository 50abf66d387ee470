package handler

import (
	"net/http"

	"loopa-api/internal/core/logger"
	"loopa-api/internal/features/earnings/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EarningsHandler handles HTTP requests for sales statistics.
type EarningsHandler struct {
	service *service.EarningsService
}

// NewEarningsHandler creates a new EarningsHandler.
func NewEarningsHandler(s *service.EarningsService) *EarningsHandler {
	return &EarningsHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// GetOverallStats handles the request for the storewide sales summary.
// @Summary Get overall sales statistics
// @Description Returns order, unit, revenue and payout totals across all designs.
// @Tags Stats
// @Produce json
// @Success 200 {object} domain.OverallStats
// @Failure 500 {object} ErrorResponse
// @Router /stats/earnings [get]
func (h *EarningsHandler) GetOverallStats(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	overall, err := h.service.GetOverallStats(c.Context())
	if err != nil {
		logger.Get().Error("Failed to compute overall stats",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(overall)
}

// GetDesignStats handles the request for the per-design sales table.
// @Summary Get per-design sales statistics
// @Description Returns units, revenue and payout split per design, sorted by revenue.
// @Tags Stats
// @Produce json
// @Success 200 {array} domain.DesignSalesStats
// @Failure 500 {object} ErrorResponse
// @Router /stats/designs [get]
func (h *EarningsHandler) GetDesignStats(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	stats, err := h.service.GetDesignStats(c.Context())
	if err != nil {
		logger.Get().Error("Failed to compute design stats",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(stats)
}
