package handler

import (
	"errors"
	"net/http"

	"loopa-api/internal/core/logger"
	"loopa-api/internal/features/spotlight/domain"
	"loopa-api/internal/features/spotlight/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SpotlightHandler handles HTTP requests for the storefront spotlight.
type SpotlightHandler struct {
	service ports.SpotlightService
}

// NewSpotlightHandler creates a new SpotlightHandler.
func NewSpotlightHandler(service ports.SpotlightService) *SpotlightHandler {
	return &SpotlightHandler{
		service: service,
	}
}

// CreateSpotlightRequest represents the request body for setting a spotlight.
type CreateSpotlightRequest struct {
	DesignID string               `json:"design_id"`
	Headline string               `json:"headline"`
	Tagline  string               `json:"tagline"`
	Kind     domain.SpotlightKind `json:"kind"`
	Duration int                  `json:"duration"` // Seconds
}

// SetSpotlight handles POST /spotlight.
// @Summary Set a new spotlight
// @Description Creates or replaces the storefront-wide featured-design promotion.
// @Tags Spotlight
// @Accept json
// @Produce json
// @Param spotlight body CreateSpotlightRequest true "Spotlight details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /spotlight [post]
func (h *SpotlightHandler) SetSpotlight(c *fiber.Ctx) error {
	var req CreateSpotlightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx := c.Context()
	if err := h.service.SetSpotlight(ctx, req.DesignID, req.Headline, req.Tagline, req.Kind, req.Duration); err != nil {
		if errors.Is(err, domain.ErrInvalidSpotlightKind) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid spotlight kind. Must be FEATURED, SALE, or DROP",
			})
		}
		if errors.Is(err, domain.ErrMissingDesignID) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Design ID is required",
			})
		}
		logger.Get().Error("Failed to set spotlight", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Spotlight set successfully",
	})
}

// GetSpotlight handles GET /spotlight.
// @Summary Get the current spotlight
// @Description Retrieves the active storefront-wide featured-design promotion.
// @Tags Spotlight
// @Produce json
// @Success 200 {object} domain.Spotlight
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /spotlight [get]
func (h *SpotlightHandler) GetSpotlight(c *fiber.Ctx) error {
	ctx := c.Context()
	spotlight, err := h.service.GetSpotlight(ctx)
	if err != nil {
		logger.Get().Error("Failed to get spotlight", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if spotlight == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "No active spotlight",
		})
	}

	return c.Status(http.StatusOK).JSON(spotlight)
}

// RemoveSpotlight handles DELETE /spotlight.
// @Summary Remove the current spotlight
// @Description Manually removes the active featured-design promotion.
// @Tags Spotlight
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /spotlight [delete]
func (h *SpotlightHandler) RemoveSpotlight(c *fiber.Ctx) error {
	ctx := c.Context()
	if err := h.service.RemoveSpotlight(ctx); err != nil {
		logger.Get().Error("Failed to remove spotlight", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Spotlight removed successfully",
	})
}
