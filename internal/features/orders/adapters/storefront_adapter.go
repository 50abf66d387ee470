package adapter

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"loopa-api/internal/core/config"
	"loopa-api/internal/core/httpclient"
	"loopa-api/internal/core/logger"
	"loopa-api/internal/features/orders/domain"

	"go.uber.org/zap"
)

// listPageSize is the per_page value used when walking the order history.
const listPageSize = 100

// StorefrontAdapter implements the OrderProvider interface using the
// storefront's WooCommerce-style REST API.
type StorefrontAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the storefront connection details.
	config config.StorefrontConfig
}

// NewStorefrontAdapter creates a new instance of StorefrontAdapter.
func NewStorefrontAdapter(cfg config.StorefrontConfig) *StorefrontAdapter {
	return &StorefrontAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// GetOrder fetches an order from the storefront and maps it to the domain entity.
func (a *StorefrontAdapter) GetOrder(orderID string) (*domain.Order, error) {
	url := fmt.Sprintf("%s/wp-json/wc/v3/orders/%s", a.config.URL, orderID)

	resp, err := a.get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("order not found: %s", orderID)
		}
		return nil, fmt.Errorf("storefront API returned status: %d", resp.StatusCode)
	}

	var raw storeOrder
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	order := mapToDomain(raw)
	return &order, nil
}

// ListOrders walks the paginated order history and returns every order,
// newest first (the storefront's default ordering).
func (a *StorefrontAdapter) ListOrders() ([]domain.Order, error) {
	var orders []domain.Order

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/wp-json/wc/v3/orders?per_page=%d&page=%d", a.config.URL, listPageSize, page)

		resp, err := a.get(url)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("storefront API returned status: %d", resp.StatusCode)
		}

		var raws []storeOrder
		err = json.NewDecoder(resp.Body).Decode(&raws)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode order page %d: %w", page, err)
		}

		for _, raw := range raws {
			orders = append(orders, mapToDomain(raw))
		}

		if len(raws) < listPageSize {
			return orders, nil
		}
	}
}

// HealthCheck verifies that the storefront API is reachable and credentials are valid.
func (a *StorefrontAdapter) HealthCheck() error {
	url := fmt.Sprintf("%s/wp-json/wc/v3/orders?per_page=1", a.config.URL)

	resp, err := a.get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}

// get issues an authenticated GET against the storefront API.
func (a *StorefrontAdapter) get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	credentials := fmt.Sprintf("%s:%s", a.config.ConsumerKey, a.config.ConsumerSecret)
	encoded := base64.StdEncoding.EncodeToString([]byte(credentials))
	req.Header.Add("Authorization", "Basic "+encoded)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	return resp, nil
}

// mapToDomain converts a raw storefront order response into a domain Order entity.
func mapToDomain(raw storeOrder) domain.Order {
	return domain.Order{
		ID:        strconv.Itoa(raw.ID),
		Status:    mapStatus(raw.Status),
		FirstName: raw.Billing.FirstName,
		LastName:  raw.Billing.LastName,
		Email:     raw.Billing.Email,
		CreatedAt: time.Time(raw.DateCreated),
		Items:     mapItems(raw.LineItems),
	}
}

// mapStatus determines the domain OrderStatus from the storefront status.
func mapStatus(status string) domain.OrderStatus {
	switch strings.ToLower(status) {
	case "completed":
		return domain.OrderStatusCompleted
	case "cancelled", "refunded", "failed":
		return domain.OrderStatusCancelled
	case "pending", "processing", "on-hold":
		return domain.OrderStatusCreated
	default:
		return domain.OrderStatusPending
	}
}

// mapItems converts storefront line items to domain OrderItems.
// The design id is carried in line item metadata; lines without one map to
// items with an empty DesignID and are ignored by earnings aggregation.
func mapItems(rawItems []storeLineItem) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(rawItems))

	for _, item := range rawItems {
		var picture string
		if len(item.Image.Src) > 0 {
			picture = item.Image.Src
		}

		items = append(items, domain.OrderItem{
			DesignID:  extractDesignID(item.MetaData),
			Quantity:  float64(item.Quantity),
			UnitPrice: float64(item.Price),
			SKU:       item.Sku,
			Name:      item.Name,
			Picture:   picture,
		})
	}

	return items
}

// extractDesignID finds the design identifier in line item metadata.
func extractDesignID(meta []storeMetaData) string {
	for _, m := range meta {
		switch m.Key {
		case "design_id", "_design_id", "_loopa_design_id":
			if val, ok := m.Value.(string); ok && val != "" {
				return val
			}
		}
	}
	return ""
}

// internal structs for mapping

// storeOrder represents the JSON structure of an order from the storefront API.
type storeOrder struct {
	// ID is the unique order ID.
	ID int `json:"id"`
	// Status is the order status (e.g., pending, processing, completed).
	Status string `json:"status"`
	// DateCreated is the timestamp when the order was created.
	DateCreated storeTime `json:"date_created"`
	// Billing holds the billing address details.
	Billing storeBilling `json:"billing"`
	// LineItems contains the products ordered.
	LineItems []storeLineItem `json:"line_items"`
}

// storeBilling holds billing contact information.
type storeBilling struct {
	// FirstName is the customer's first name.
	FirstName string `json:"first_name"`
	// LastName is the customer's last name.
	LastName string `json:"last_name"`
	// Email is the customer's email address.
	Email string `json:"email"`
}

// storeLineItem represents a product line in the storefront order.
type storeLineItem struct {
	// ID is the unique identifier for the line item.
	ID int `json:"id"`
	// Name is the product name.
	Name string `json:"name"`
	// Sku is the product SKU.
	Sku string `json:"sku"`
	// Quantity is the number of units ordered.
	Quantity int `json:"quantity"`
	// Price is the per-unit sale price. The storefront sends it either as a
	// number or as a quoted string depending on plugin versions.
	Price storeNumber `json:"price"`
	// Image holds the product image details.
	Image storeImage `json:"image"`
	// MetaData carries extra fields, including the design id.
	MetaData []storeMetaData `json:"meta_data"`
}

// storeMetaData represents a key-value pair in storefront metadata.
type storeMetaData struct {
	// Key is the metadata key name.
	Key string `json:"key"`
	// Value is the metadata value, which can be of various types.
	Value interface{} `json:"value"`
}

// storeImage holds the product image URL.
type storeImage struct {
	// Src is the source URL of the image.
	Src string `json:"src"`
}

// storeTime is a custom helper struct to handle the storefront's date format.
type storeTime time.Time

// UnmarshalJSON parses the storefront date format. Missing or unparseable
// dates become the zero time rather than an error, so one bad record never
// sinks a whole order page.
func (t *storeTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "null" || s == "" {
		*t = storeTime(time.Time{})
		return nil
	}
	parsed, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		// Try with timezone just in case
		parsed, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		logger.Get().Warn("Failed to parse date", zap.String("date", s), zap.Error(err))
		*t = storeTime(time.Time{})
		return nil
	}
	*t = storeTime(parsed)
	return nil
}

// storeNumber is a numeric field the storefront sends as either a JSON
// number or a quoted string. Unparseable values degrade to zero.
type storeNumber float64

// UnmarshalJSON accepts both representations.
func (n *storeNumber) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "null" || s == "" {
		*n = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logger.Get().Warn("Failed to parse numeric field", zap.String("value", s), zap.Error(err))
		*n = 0
		return nil
	}
	*n = storeNumber(parsed)
	return nil
}
