package service

import (
	"errors"
	"testing"

	"loopa-api/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderProvider is a mock implementation of ports.OrderProvider
type MockOrderProvider struct {
	mock.Mock
}

func (m *MockOrderProvider) GetOrder(orderID string) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderProvider) ListOrders() ([]domain.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func TestOrderService_GetOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		provider := new(MockOrderProvider)
		service := NewOrderService(provider)

		expected := &domain.Order{ID: "42", Email: "jane@example.com"}
		provider.On("GetOrder", "42").Return(expected, nil).Once()

		order, err := service.GetOrder("42", "Jane@Example.com")
		require.NoError(t, err)
		assert.Equal(t, expected, order)
		provider.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		provider := new(MockOrderProvider)
		service := NewOrderService(provider)

		provider.On("GetOrder", "404").Return(nil, nil).Once()

		order, err := service.GetOrder("404", "jane@example.com")
		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.Nil(t, order)
	})

	t.Run("EmailMismatch", func(t *testing.T) {
		provider := new(MockOrderProvider)
		service := NewOrderService(provider)

		provider.On("GetOrder", "42").Return(&domain.Order{ID: "42", Email: "jane@example.com"}, nil).Once()

		order, err := service.GetOrder("42", "someone.else@example.com")
		assert.ErrorIs(t, err, ErrEmailMismatch)
		assert.Nil(t, order)
	})

	t.Run("ProviderError", func(t *testing.T) {
		provider := new(MockOrderProvider)
		service := NewOrderService(provider)

		provider.On("GetOrder", "42").Return(nil, errors.New("upstream down")).Once()

		order, err := service.GetOrder("42", "jane@example.com")
		assert.Error(t, err)
		assert.Nil(t, order)
	})
}
