package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when an order does not exist.
	ErrNotFound = errors.New("order not found")

	// ErrValidation is returned when an order payload fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition is returned for a disallowed status change.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStockItemNotFound is returned by the stock port when the ordered
	// product does not exist in the catalog.
	ErrStockItemNotFound = errors.New("product not found in catalog")
)

// Order statuses
const (
	StatusCreated    = "created"
	StatusProcessing = "processing"
	StatusFulfilled  = "fulfilled"
	StatusCancelled  = "cancelled"
)

// CanTransition reports whether a status change is allowed. Orders move
// created -> processing -> fulfilled, and may be cancelled until fulfilled.
func CanTransition(from, to string) bool {
	switch from {
	case StatusCreated:
		return to == StatusProcessing || to == StatusCancelled
	case StatusProcessing:
		return to == StatusFulfilled || to == StatusCancelled
	default:
		return false
	}
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusCreated, StatusProcessing, StatusFulfilled, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is a line snapshot taken at purchase time. Prices are copied so
// later catalog edits do not rewrite order history.
type OrderItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// ItemList stores order lines as a JSONB column.
type ItemList []OrderItem

func (l ItemList) Value() (driver.Value, error) {
	if l == nil {
		l = ItemList{}
	}
	return json.Marshal(l)
}

func (l *ItemList) Scan(value interface{}) error {
	if value == nil {
		*l = ItemList{}
		return nil
	}
	raw, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for item list", value)
	}
	return json.Unmarshal(raw, l)
}

// Order represents a placed order
type Order struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	Items         ItemList  `json:"order_items"`
	ItemsPrice    float64   `json:"items_price"`
	DeliveryPrice float64   `json:"delivery_price"`
	Discount      float64   `json:"discount"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Line outcome statuses
const (
	LineOK       = "ok"
	LineNotFound = "not_found"
	LineFailed   = "failed"
)

// LineOutcome reports what happened to one order line's stock consumption.
// A failed line never rolls back the order; it is surfaced here instead.
type LineOutcome struct {
	Index      int    `json:"index"`
	ProductID  uint   `json:"product_id"`
	Status     string `json:"status"`
	CurrentQty int    `json:"current_qty,omitempty"`
	Restocked  bool   `json:"restocked,omitempty"`
	Error      string `json:"error,omitempty"`
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(order *Order) error
	FindByID(id uint) (*Order, error)
	FindAll(limit, offset int) ([]Order, error)
	FindByUserID(userID uint, limit, offset int) ([]Order, error)
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
	Count() (int, error)
}

// StockResult is the outcome of consuming stock for one line.
type StockResult struct {
	CurrentQty int
	Restocked  bool
	Replayed   bool
}

// StockConsumer is the port to the catalog's stock ledger. The line key makes
// consumption idempotent across retries of the same order line.
type StockConsumer interface {
	Consume(productID uint, quantity int, lineKey string) (*StockResult, error)
}
