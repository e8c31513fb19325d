package command

import (
	"fmt"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// UpdateStockCommand adjusts the replenishment counters on a product: the
// nominal restock level, the buying price and the reorder threshold. The
// live quantity is only ever moved by consumption (and its restock cycle).
type UpdateStockCommand struct {
	ProductID    uint
	CountInStock int
	BuyingPrice  float64
	ReOrderQty   int
}

// UpdateStockHandler handles stock counter update command
type UpdateStockHandler struct {
	repo domain.ProductRepository
}

// NewUpdateStockHandler creates a new update stock handler
func NewUpdateStockHandler(repo domain.ProductRepository) *UpdateStockHandler {
	return &UpdateStockHandler{repo: repo}
}

// Handle executes the update stock command
func (h *UpdateStockHandler) Handle(cmd UpdateStockCommand) (*domain.Product, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrValidation)
	}
	if cmd.CountInStock < 0 {
		return nil, fmt.Errorf("%w: count in stock cannot be negative", domain.ErrValidation)
	}
	if cmd.ReOrderQty < 0 {
		return nil, fmt.Errorf("%w: reorder quantity cannot be negative", domain.ErrValidation)
	}
	if cmd.BuyingPrice < 0 {
		return nil, fmt.Errorf("%w: buying price cannot be negative", domain.ErrValidation)
	}

	product, err := mutateProduct(h.repo, cmd.ProductID, func(p *domain.Product) error {
		p.CountInStock = cmd.CountInStock
		p.BuyingPrice = cmd.BuyingPrice
		p.ReOrderQty = cmd.ReOrderQty
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}
