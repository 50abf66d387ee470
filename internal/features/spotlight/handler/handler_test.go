package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"loopa-api/internal/features/spotlight/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSpotlightService is a mock implementation of ports.SpotlightService
type MockSpotlightService struct {
	mock.Mock
}

func (m *MockSpotlightService) SetSpotlight(ctx context.Context, designID, headline, tagline string, kind domain.SpotlightKind, duration int) error {
	args := m.Called(ctx, designID, headline, tagline, kind, duration)
	return args.Error(0)
}

func (m *MockSpotlightService) GetSpotlight(ctx context.Context) (*domain.Spotlight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Spotlight), args.Error(1)
}

func (m *MockSpotlightService) RemoveSpotlight(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func setupApp(service *MockSpotlightService) *fiber.App {
	app := fiber.New()
	h := NewSpotlightHandler(service)
	app.Post("/spotlight", h.SetSpotlight)
	app.Get("/spotlight", h.GetSpotlight)
	app.Delete("/spotlight", h.RemoveSpotlight)
	return app
}

func postSpotlight(t *testing.T, app *fiber.App, body CreateSpotlightRequest) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/spotlight", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSpotlightHandler_SetSpotlight(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockSpotlightService)
		app := setupApp(mockService)

		mockService.On("SetSpotlight", mock.Anything, "dsg_wave", "Wave drop", "Limited run", domain.SpotlightKindDrop, 60).Return(nil).Once()

		resp := postSpotlight(t, app, CreateSpotlightRequest{
			DesignID: "dsg_wave",
			Headline: "Wave drop",
			Tagline:  "Limited run",
			Kind:     domain.SpotlightKindDrop,
			Duration: 60,
		})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidKind", func(t *testing.T) {
		mockService := new(MockSpotlightService)
		app := setupApp(mockService)

		mockService.On("SetSpotlight", mock.Anything, "dsg_wave", "", "", domain.SpotlightKind("BOGUS"), 0).Return(domain.ErrInvalidSpotlightKind).Once()

		resp := postSpotlight(t, app, CreateSpotlightRequest{DesignID: "dsg_wave", Kind: "BOGUS"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("MissingDesignID", func(t *testing.T) {
		mockService := new(MockSpotlightService)
		app := setupApp(mockService)

		mockService.On("SetSpotlight", mock.Anything, "", "", "", domain.SpotlightKindFeatured, 0).Return(domain.ErrMissingDesignID).Once()

		resp := postSpotlight(t, app, CreateSpotlightRequest{Kind: domain.SpotlightKindFeatured})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InternalError", func(t *testing.T) {
		mockService := new(MockSpotlightService)
		app := setupApp(mockService)

		mockService.On("SetSpotlight", mock.Anything, "dsg_wave", "", "", domain.SpotlightKindSale, 0).Return(errors.New("cache down")).Once()

		resp := postSpotlight(t, app, CreateSpotlightRequest{DesignID: "dsg_wave", Kind: domain.SpotlightKindSale})

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		mockService := new(MockSpotlightService)
		app := setupApp(mockService)

		req := httptest.NewRequest(http.MethodPost, "/spotlight", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "SetSpotlight")
	})
}

func TestSpotlightHandler_GetSpotlight(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockSpotlightService)
		app := setupApp(mockService)

		spotlight := &domain.Spotlight{
			DesignID: "dsg_wave",
			Headline: "Wave drop",
			Kind:     domain.SpotlightKindDrop,
		}
		mockService.On("GetSpotlight", mock.Anything).Return(spotlight, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/spotlight", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got domain.Spotlight
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "dsg_wave", got.DesignID)
		mockService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockSpotlightService)
		app := setupApp(mockService)

		mockService.On("GetSpotlight", mock.Anything).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/spotlight", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InternalError", func(t *testing.T) {
		mockService := new(MockSpotlightService)
		app := setupApp(mockService)

		mockService.On("GetSpotlight", mock.Anything).Return(nil, errors.New("cache down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/spotlight", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}

func TestSpotlightHandler_RemoveSpotlight(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockSpotlightService)
		app := setupApp(mockService)

		mockService.On("RemoveSpotlight", mock.Anything).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/spotlight", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InternalError", func(t *testing.T) {
		mockService := new(MockSpotlightService)
		app := setupApp(mockService)

		mockService.On("RemoveSpotlight", mock.Anything).Return(errors.New("cache down")).Once()

		req := httptest.NewRequest(http.MethodDelete, "/spotlight", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}
