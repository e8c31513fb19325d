package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tair/shop-admin/internal/order/domain"
)

func placeOrderCmd(items []domain.OrderItem, itemsPrice float64) PlaceOrderCommand {
	return PlaceOrderCommand{
		UserID:        1,
		Items:         items,
		ItemsPrice:    itemsPrice,
		DeliveryPrice: 5,
		Discount:      0,
		TotalPrice:    itemsPrice + 5,
		Status:        domain.StatusCreated,
	}
}

func TestPlaceOrder_ConsumesEveryLine(t *testing.T) {
	repo := newFakeOrderRepo()
	stock := newFakeStock()
	stock.qty[1] = 10
	stock.qty[2] = 4

	cmd := placeOrderCmd([]domain.OrderItem{
		{ProductID: 1, Name: "beans", Quantity: 2, UnitPrice: 12},
		{ProductID: 2, Name: "kettle", Quantity: 1, UnitPrice: 30},
	}, 54)

	result, err := NewPlaceOrderHandler(repo, stock).Handle(cmd)
	require.NoError(t, err)
	require.False(t, result.PartialFailure)
	require.NotZero(t, result.Order.ID)
	require.Len(t, result.Outcomes, 2)
	require.Equal(t, domain.LineOK, result.Outcomes[0].Status)
	require.Equal(t, 8, result.Outcomes[0].CurrentQty)
	require.Equal(t, domain.LineOK, result.Outcomes[1].Status)
	require.Equal(t, 3, result.Outcomes[1].CurrentQty)

	// Line keys are derived from the persisted order id and line index.
	require.Equal(t, []string{"order-1:0", "order-1:1"}, stock.calls)
}

// One valid line and one unknown product: the valid line consumes, the bad
// line is reported, and the order itself still stands.
func TestPlaceOrder_MissingProductDoesNotRollBackOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	stock := newFakeStock()
	stock.qty[1] = 5

	cmd := placeOrderCmd([]domain.OrderItem{
		{ProductID: 1, Name: "beans", Quantity: 2, UnitPrice: 10},
		{ProductID: 99, Name: "ghost", Quantity: 1, UnitPrice: 10},
	}, 30)

	result, err := NewPlaceOrderHandler(repo, stock).Handle(cmd)
	require.NoError(t, err)
	require.True(t, result.PartialFailure)

	require.Equal(t, domain.LineOK, result.Outcomes[0].Status)
	require.Equal(t, 3, result.Outcomes[0].CurrentQty)
	require.Equal(t, domain.LineNotFound, result.Outcomes[1].Status)
	require.NotEmpty(t, result.Outcomes[1].Error)

	persisted, err := repo.FindByID(result.Order.ID)
	require.NoError(t, err)
	require.Len(t, persisted.Items, 2)
}

func TestPlaceOrder_FailedLineDoesNotStopLaterLines(t *testing.T) {
	repo := newFakeOrderRepo()
	stock := newFakeStock()
	stock.failing[1] = true
	stock.qty[2] = 6

	cmd := placeOrderCmd([]domain.OrderItem{
		{ProductID: 1, Name: "flaky", Quantity: 1, UnitPrice: 10},
		{ProductID: 2, Name: "stable", Quantity: 2, UnitPrice: 10},
	}, 30)

	result, err := NewPlaceOrderHandler(repo, stock).Handle(cmd)
	require.NoError(t, err)
	require.True(t, result.PartialFailure)
	require.Equal(t, domain.LineFailed, result.Outcomes[0].Status)
	require.Equal(t, domain.LineOK, result.Outcomes[1].Status)
	require.Equal(t, 4, result.Outcomes[1].CurrentQty)
}

func TestPlaceOrder_ReportsRestockedLines(t *testing.T) {
	repo := newFakeOrderRepo()
	stock := newFakeStock()
	stock.qty[1] = 0
	stock.restock[1] = 10

	cmd := placeOrderCmd([]domain.OrderItem{
		{ProductID: 1, Name: "beans", Quantity: 3, UnitPrice: 10},
	}, 30)

	result, err := NewPlaceOrderHandler(repo, stock).Handle(cmd)
	require.NoError(t, err)
	require.False(t, result.PartialFailure)
	require.True(t, result.Outcomes[0].Restocked)
	require.Equal(t, 7, result.Outcomes[0].CurrentQty)
}

func TestPlaceOrder_RejectsEmptyItems(t *testing.T) {
	repo := newFakeOrderRepo()

	_, err := NewPlaceOrderHandler(repo, newFakeStock()).Handle(placeOrderCmd(nil, 0))
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Empty(t, repo.orders)
}

func TestPlaceOrder_RejectsNonPositiveLineQuantity(t *testing.T) {
	repo := newFakeOrderRepo()

	cmd := placeOrderCmd([]domain.OrderItem{
		{ProductID: 1, Name: "beans", Quantity: 0, UnitPrice: 10},
	}, 10)

	_, err := NewPlaceOrderHandler(repo, newFakeStock()).Handle(cmd)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestPlaceOrder_RejectsTotalMismatch(t *testing.T) {
	repo := newFakeOrderRepo()
	stock := newFakeStock()
	stock.qty[1] = 5

	cmd := placeOrderCmd([]domain.OrderItem{
		{ProductID: 1, Name: "beans", Quantity: 1, UnitPrice: 10},
	}, 10)
	cmd.TotalPrice = 99

	_, err := NewPlaceOrderHandler(repo, stock).Handle(cmd)
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Empty(t, stock.calls)
	require.Empty(t, repo.orders)
}

func TestPlaceOrder_RejectsUnknownStatus(t *testing.T) {
	repo := newFakeOrderRepo()

	cmd := placeOrderCmd([]domain.OrderItem{
		{ProductID: 1, Name: "beans", Quantity: 1, UnitPrice: 10},
	}, 10)
	cmd.Status = "shipped"

	_, err := NewPlaceOrderHandler(repo, newFakeStock()).Handle(cmd)
	require.ErrorIs(t, err, domain.ErrValidation)
}
