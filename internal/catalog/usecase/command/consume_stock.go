package command

import (
	"fmt"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// ConsumeStockCommand applies one order line's quantity against a product's
// live stock. LineKey identifies the order line for idempotent replay; it is
// optional for ad-hoc consumption.
type ConsumeStockCommand struct {
	ProductID uint
	Quantity  int
	LineKey   string
}

// ConsumeStockResult reports the ledger outcome for one consumption.
type ConsumeStockResult struct {
	ProductID  uint
	CurrentQty int
	Restocked  bool
	Replayed   bool
}

// ConsumeStockHandler handles stock consumption commands
type ConsumeStockHandler struct {
	repo domain.ProductRepository
}

// NewConsumeStockHandler creates a new consume stock handler
func NewConsumeStockHandler(repo domain.ProductRepository) *ConsumeStockHandler {
	return &ConsumeStockHandler{repo: repo}
}

// Handle executes the consume stock command. When the live quantity is found
// at or below zero the ledger replenishes to the nominal count-in-stock level
// first, then subtracts; the result is not clamped and may go negative when
// the requested quantity exceeds the replenished amount. A command whose
// line key was already applied replays the recorded outcome instead of
// consuming again, so retries after transient failures cannot trigger a
// second restock cycle.
func (h *ConsumeStockHandler) Handle(cmd ConsumeStockCommand) (*ConsumeStockResult, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrValidation)
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrInvalidQuantity, cmd.Quantity)
	}

	if cmd.LineKey != "" {
		movement, err := h.repo.FindMovementByLineKey(cmd.LineKey)
		if err != nil {
			return nil, fmt.Errorf("failed to check line key: %w", err)
		}
		if movement != nil {
			return &ConsumeStockResult{
				ProductID:  cmd.ProductID,
				CurrentQty: movement.ResultingQty,
				Replayed:   true,
			}, nil
		}
	}

	var restocked bool
	var restockedTo int
	product, err := mutateProduct(h.repo, cmd.ProductID, func(p *domain.Product) error {
		restocked = p.ApplyConsumption(cmd.Quantity)
		restockedTo = p.CountInStock
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Audit trail. The counters are already committed; a failed movement
	// write weakens replay detection for this line but must not undo the
	// sale. The unique index on line_key is the backstop for racing
	// duplicates.
	if restocked {
		_ = h.repo.RecordMovement(&domain.StockMovement{
			ProductID:    product.ID,
			Kind:         domain.MovementRestock,
			Quantity:     restockedTo,
			ResultingQty: restockedTo,
		})
	}
	_ = h.repo.RecordMovement(&domain.StockMovement{
		ProductID:    product.ID,
		Kind:         domain.MovementConsume,
		Quantity:     cmd.Quantity,
		ResultingQty: product.CurrentQty,
		LineKey:      cmd.LineKey,
	})

	return &ConsumeStockResult{
		ProductID:  product.ID,
		CurrentQty: product.CurrentQty,
		Restocked:  restocked,
	}, nil
}
