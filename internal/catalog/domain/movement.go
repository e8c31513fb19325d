package domain

import "time"

// Stock movement kinds.
const (
	MovementConsume = "consume"
	MovementRestock = "restock"
)

// StockMovement is the audit record for every ledger action. Restock cycles
// used to happen silently in place; recording them makes replenishment
// observable. The line key doubles as an idempotency guard: a consumption
// carrying an already-recorded key is a replay, not a new sale.
type StockMovement struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProductID    uint      `json:"product_id" gorm:"not null;index"`
	Kind         string    `json:"kind" gorm:"not null"`
	Quantity     int       `json:"quantity" gorm:"not null"`
	ResultingQty int       `json:"resulting_qty" gorm:"not null"`
	LineKey      string    `json:"line_key,omitempty" gorm:"uniqueIndex:idx_movements_line_key,where:line_key <> ''"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name
func (StockMovement) TableName() string {
	return "stock_movements"
}
