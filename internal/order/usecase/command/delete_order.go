package command

import (
	"fmt"

	"github.com/tair/shop-admin/internal/order/domain"
)

// DeleteOrderCommand represents the command to delete an order
type DeleteOrderCommand struct {
	OrderID uint
}

// DeleteOrderHandler handles order deletion
type DeleteOrderHandler struct {
	repo domain.OrderRepository
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(repo domain.OrderRepository) *DeleteOrderHandler {
	return &DeleteOrderHandler{repo: repo}
}

// Handle executes the delete order command
func (h *DeleteOrderHandler) Handle(cmd DeleteOrderCommand) error {
	if cmd.OrderID == 0 {
		return fmt.Errorf("%w: order_id is required", domain.ErrValidation)
	}
	return h.repo.Delete(cmd.OrderID)
}
