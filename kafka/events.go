package kafka

import "time"

// OrderLineOutcome mirrors the per-line stock result carried on the event
type OrderLineOutcome struct {
	Index      int    `json:"index"`
	ProductID  uint   `json:"product_id"`
	Status     string `json:"status"`
	CurrentQty int    `json:"current_qty,omitempty"`
	Restocked  bool   `json:"restocked,omitempty"`
}

// OrderPlacedEvent is emitted after an order is persisted and its lines
// have been consumed against the stock ledger
type OrderPlacedEvent struct {
	EventID        string             `json:"event_id"`
	EventType      string             `json:"event_type"`
	OrderID        uint               `json:"order_id"`
	UserID         uint               `json:"user_id"`
	TotalPrice     float64            `json:"total_price"`
	LineOutcomes   []OrderLineOutcome `json:"line_outcomes"`
	PartialFailure bool               `json:"partial_failure"`
	Timestamp      time.Time          `json:"timestamp"`
}

// StockReplenishedEvent is emitted when a depleted product restocked itself
// while consuming an order line
type StockReplenishedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	ProductID   uint      `json:"product_id"`
	RestockedTo int       `json:"restocked_to"`
	LineKey     string    `json:"line_key"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced      = "order.placed"
	EventTypeStockReplenished = "stock.replenished"
)

// Kafka topics
const (
	TopicOrderPlaced      = "order-placed"
	TopicStockReplenished = "stock-replenished"
)
