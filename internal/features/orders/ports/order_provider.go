package ports

import "loopa-api/internal/features/orders/domain"

// OrderProvider defines the interface for retrieving storefront order data.
// This is a Secondary Port (Driven Port).
type OrderProvider interface {
	// GetOrder retrieves an order by its unique identifier.
	GetOrder(orderID string) (*domain.Order, error)
	// ListOrders retrieves the full order history, newest first.
	ListOrders() ([]domain.Order, error)
}
