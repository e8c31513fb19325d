package query

import (
	"fmt"

	"github.com/tair/shop-admin/internal/order/domain"
)

// GetOrderQuery represents the query to get a single order
type GetOrderQuery struct {
	ID uint
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(query GetOrderQuery) (*domain.Order, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("%w: invalid order id", domain.ErrValidation)
	}
	return h.repo.FindByID(query.ID)
}
