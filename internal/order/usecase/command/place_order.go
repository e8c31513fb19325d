package command

import (
	"errors"
	"fmt"
	"math"

	"github.com/tair/shop-admin/internal/order/domain"
)

// totalTolerance absorbs float rounding when checking the declared total
// against the recomputed one.
const totalTolerance = 0.005

// PlaceOrderCommand represents the command to place an order
type PlaceOrderCommand struct {
	UserID        uint
	Items         []domain.OrderItem
	ItemsPrice    float64
	DeliveryPrice float64
	Discount      float64
	TotalPrice    float64
	Status        string
}

// PlaceOrderResult carries the persisted order plus the per-line stock
// outcomes. PartialFailure is set when at least one line could not consume
// stock; the order itself is never rolled back for that.
type PlaceOrderResult struct {
	Order          *domain.Order       `json:"order"`
	Outcomes       []domain.LineOutcome `json:"line_outcomes"`
	PartialFailure bool                `json:"partial_failure"`
}

// PlaceOrderHandler handles order placement
type PlaceOrderHandler struct {
	repo  domain.OrderRepository
	stock domain.StockConsumer
}

// NewPlaceOrderHandler creates a new place order handler
func NewPlaceOrderHandler(repo domain.OrderRepository, stock domain.StockConsumer) *PlaceOrderHandler {
	return &PlaceOrderHandler{repo: repo, stock: stock}
}

// Handle persists the order first, then walks the lines consuming stock.
// Line failures are collected as outcomes and never stop later lines.
func (h *PlaceOrderHandler) Handle(cmd PlaceOrderCommand) (*PlaceOrderResult, error) {
	if err := h.validate(cmd); err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:        cmd.UserID,
		Items:         cmd.Items,
		ItemsPrice:    cmd.ItemsPrice,
		DeliveryPrice: cmd.DeliveryPrice,
		Discount:      cmd.Discount,
		TotalPrice:    cmd.TotalPrice,
		Status:        cmd.Status,
	}

	if err := h.repo.Create(order); err != nil {
		return nil, err
	}

	result := &PlaceOrderResult{Order: order}
	for i, item := range cmd.Items {
		outcome := domain.LineOutcome{Index: i, ProductID: item.ProductID}

		lineKey := fmt.Sprintf("order-%d:%d", order.ID, i)
		stock, err := h.stock.Consume(item.ProductID, item.Quantity, lineKey)
		switch {
		case err == nil:
			outcome.Status = domain.LineOK
			outcome.CurrentQty = stock.CurrentQty
			outcome.Restocked = stock.Restocked
		case errors.Is(err, domain.ErrStockItemNotFound):
			outcome.Status = domain.LineNotFound
			outcome.Error = err.Error()
			result.PartialFailure = true
		default:
			outcome.Status = domain.LineFailed
			outcome.Error = err.Error()
			result.PartialFailure = true
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, nil
}

func (h *PlaceOrderHandler) validate(cmd PlaceOrderCommand) error {
	if len(cmd.Items) == 0 {
		return fmt.Errorf("%w: order has no items", domain.ErrValidation)
	}
	for i, item := range cmd.Items {
		if item.ProductID == 0 {
			return fmt.Errorf("%w: item %d has no product id", domain.ErrValidation, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d has non-positive quantity", domain.ErrValidation, i)
		}
	}
	if cmd.ItemsPrice < 0 || cmd.DeliveryPrice < 0 || cmd.Discount < 0 {
		return fmt.Errorf("%w: prices cannot be negative", domain.ErrValidation)
	}
	if !domain.ValidStatus(cmd.Status) {
		return fmt.Errorf("%w: invalid status %q", domain.ErrValidation, cmd.Status)
	}

	expected := cmd.ItemsPrice + cmd.DeliveryPrice - cmd.Discount
	if math.Abs(expected-cmd.TotalPrice) > totalTolerance {
		return fmt.Errorf("%w: total price %.2f does not match computed %.2f",
			domain.ErrValidation, cmd.TotalPrice, expected)
	}

	return nil
}
