package domain

import (
	"time"
)

// OrderStatus represents the current state of an order.
type OrderStatus string

const (
	// OrderStatusPending indicates the order state is not yet known.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusCreated indicates the order has been placed but not yet shipped.
	OrderStatusCreated OrderStatus = "CREATED"
	// OrderStatusShipped indicates the order has been handed to the carrier.
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusCompleted indicates the order has been delivered and finalized.
	OrderStatusCompleted OrderStatus = "COMPLETED"
	// OrderStatusCancelled indicates the order was cancelled, refunded or failed.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order represents a customer order in the marketplace.
type Order struct {
	// ID is the unique identifier for the order.
	ID string `json:"order_id"`
	// Status represents the current state of the order (e.g., CREATED, SHIPPED).
	Status OrderStatus `json:"status"`
	// FirstName is the first name of the customer.
	FirstName string `json:"name"`
	// LastName is the last name of the customer.
	LastName string `json:"last_name"`
	// Email is the contact email for the customer.
	Email string `json:"email"`
	// CreatedAt is the timestamp when the order was placed. The zero value
	// means the storefront date was missing or unparseable.
	CreatedAt time.Time `json:"create_date"`
	// Items contains the list of products included in the order.
	Items []OrderItem `json:"items"`
}

// OrderItem represents an individual line within an order.
type OrderItem struct {
	// DesignID identifies the creator design sold by this line. Empty for
	// lines that are not design sales (fees, plain merchandise).
	DesignID string `json:"design_id,omitempty"`
	// Quantity is the number of units purchased.
	Quantity float64 `json:"quantity"`
	// UnitPrice is the sale price per unit.
	UnitPrice float64 `json:"unit_price"`
	// SKU is the Stock Keeping Unit identifier for the product.
	SKU string `json:"sku"`
	// Name is the descriptive name of the product.
	Name string `json:"name"`
	// Picture is the URL to an image of the product.
	Picture string `json:"picture"`
}
