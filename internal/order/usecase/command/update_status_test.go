package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tair/shop-admin/internal/order/domain"
)

func seedOrder(repo *fakeOrderRepo, status string) *domain.Order {
	order := &domain.Order{
		UserID: 1,
		Items: domain.ItemList{
			{ProductID: 1, Name: "beans", Quantity: 1, UnitPrice: 10},
		},
		ItemsPrice: 10,
		TotalPrice: 10,
		Status:     status,
	}
	_ = repo.Create(order)
	return order
}

func TestUpdateStatus_AllowedTransitions(t *testing.T) {
	cases := []struct {
		from, to string
	}{
		{domain.StatusCreated, domain.StatusProcessing},
		{domain.StatusCreated, domain.StatusCancelled},
		{domain.StatusProcessing, domain.StatusFulfilled},
		{domain.StatusProcessing, domain.StatusCancelled},
	}

	for _, tc := range cases {
		repo := newFakeOrderRepo()
		order := seedOrder(repo, tc.from)

		err := NewUpdateStatusHandler(repo).Handle(UpdateStatusCommand{OrderID: order.ID, Status: tc.to})
		require.NoError(t, err, "%s -> %s", tc.from, tc.to)

		stored, err := repo.FindByID(order.ID)
		require.NoError(t, err)
		require.Equal(t, tc.to, stored.Status)
	}
}

func TestUpdateStatus_RejectsInvalidTransitions(t *testing.T) {
	cases := []struct {
		from, to string
	}{
		{domain.StatusCreated, domain.StatusFulfilled},
		{domain.StatusFulfilled, domain.StatusProcessing},
		{domain.StatusFulfilled, domain.StatusCancelled},
		{domain.StatusCancelled, domain.StatusProcessing},
	}

	for _, tc := range cases {
		repo := newFakeOrderRepo()
		order := seedOrder(repo, tc.from)

		err := NewUpdateStatusHandler(repo).Handle(UpdateStatusCommand{OrderID: order.ID, Status: tc.to})
		require.ErrorIs(t, err, domain.ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	order := seedOrder(repo, domain.StatusCreated)

	err := NewUpdateStatusHandler(repo).Handle(UpdateStatusCommand{OrderID: order.ID, Status: "shipped"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateStatus_MissingOrder(t *testing.T) {
	repo := newFakeOrderRepo()

	err := NewUpdateStatusHandler(repo).Handle(UpdateStatusCommand{OrderID: 42, Status: domain.StatusProcessing})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	order := seedOrder(repo, domain.StatusCreated)

	require.NoError(t, NewDeleteOrderHandler(repo).Handle(DeleteOrderCommand{OrderID: order.ID}))

	_, err := repo.FindByID(order.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteOrder_MissingOrder(t *testing.T) {
	repo := newFakeOrderRepo()

	err := NewDeleteOrderHandler(repo).Handle(DeleteOrderCommand{OrderID: 7})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
