package command

import (
	"fmt"

	"github.com/tair/shop-admin/internal/order/domain"
)

// UpdateStatusCommand represents the command to update order status
type UpdateStatusCommand struct {
	OrderID uint
	Status  string
}

// UpdateStatusHandler handles update status command
type UpdateStatusHandler struct {
	repo domain.OrderRepository
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(repo domain.OrderRepository) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo}
}

// Handle executes the update status command
func (h *UpdateStatusHandler) Handle(cmd UpdateStatusCommand) error {
	if cmd.OrderID == 0 {
		return fmt.Errorf("%w: order_id is required", domain.ErrValidation)
	}
	if !domain.ValidStatus(cmd.Status) {
		return fmt.Errorf("%w: invalid status %q", domain.ErrValidation, cmd.Status)
	}

	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return err
	}

	if !domain.CanTransition(order.Status, cmd.Status) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, cmd.Status)
	}

	return h.repo.UpdateStatus(cmd.OrderID, cmd.Status)
}
