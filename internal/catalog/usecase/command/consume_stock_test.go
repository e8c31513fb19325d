package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

func seedStock(repo *fakeProductRepo, countInStock, currentQty int) *domain.Product {
	return repo.seed(&domain.Product{
		Name:         "Espresso Beans 1kg",
		Brand:        "Roastery",
		Category:     "coffee",
		Description:  "dark roast",
		SKU:          "SKU-0001",
		Barcode:      "4711",
		CountInStock: countInStock,
		CurrentQty:   currentQty,
		ReOrderQty:   2,
	})
}

func TestConsumeStock_SubtractsFromLiveQuantity(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedStock(repo, 10, 5)

	res, err := NewConsumeStockHandler(repo).Handle(ConsumeStockCommand{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, 3, res.CurrentQty)
	require.False(t, res.Restocked)

	stored, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	require.Equal(t, 3, stored.CurrentQty)
}

func TestConsumeStock_RestocksWhenDepleted(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedStock(repo, 10, 0)

	res, err := NewConsumeStockHandler(repo).Handle(ConsumeStockCommand{ProductID: p.ID, Quantity: 3})
	require.NoError(t, err)
	require.True(t, res.Restocked)
	require.Equal(t, 7, res.CurrentQty)

	// The replenishment cycle must leave an audit trail.
	require.Len(t, repo.movements, 2)
	require.Equal(t, domain.MovementRestock, repo.movements[0].Kind)
	require.Equal(t, 10, repo.movements[0].ResultingQty)
	require.Equal(t, domain.MovementConsume, repo.movements[1].Kind)
	require.Equal(t, 7, repo.movements[1].ResultingQty)
}

func TestConsumeStock_ResultMayGoNegative(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedStock(repo, 2, 0)

	res, err := NewConsumeStockHandler(repo).Handle(ConsumeStockCommand{ProductID: p.ID, Quantity: 5})
	require.NoError(t, err)
	require.True(t, res.Restocked)
	require.Equal(t, -3, res.CurrentQty)
}

func TestConsumeStock_RejectsNonPositiveQuantity(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedStock(repo, 10, 5)

	for _, qty := range []int{0, -1} {
		_, err := NewConsumeStockHandler(repo).Handle(ConsumeStockCommand{ProductID: p.ID, Quantity: qty})
		require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}

	stored, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	require.Equal(t, 5, stored.CurrentQty)
}

func TestConsumeStock_MissingProduct(t *testing.T) {
	repo := newFakeProductRepo()

	_, err := NewConsumeStockHandler(repo).Handle(ConsumeStockCommand{ProductID: 42, Quantity: 1})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConsumeStock_LineKeyReplayDoesNotDoubleConsume(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedStock(repo, 10, 5)
	handler := NewConsumeStockHandler(repo)

	first, err := handler.Handle(ConsumeStockCommand{ProductID: p.ID, Quantity: 2, LineKey: "order-1:0"})
	require.NoError(t, err)
	require.Equal(t, 3, first.CurrentQty)
	require.False(t, first.Replayed)

	second, err := handler.Handle(ConsumeStockCommand{ProductID: p.ID, Quantity: 2, LineKey: "order-1:0"})
	require.NoError(t, err)
	require.True(t, second.Replayed)
	require.Equal(t, 3, second.CurrentQty)

	stored, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	require.Equal(t, 3, stored.CurrentQty)
}

func TestConsumeStock_RetriesOnVersionConflict(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedStock(repo, 10, 5)

	// A competing writer lands between our read and our write.
	repo.beforeUpdate = func() {
		other, err := repo.FindByID(p.ID)
		require.NoError(t, err)
		other.Description = "updated by someone else"
		require.NoError(t, repo.UpdateVersioned(other))
	}

	res, err := NewConsumeStockHandler(repo).Handle(ConsumeStockCommand{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, 3, res.CurrentQty)

	stored, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	require.Equal(t, "updated by someone else", stored.Description)
	require.Equal(t, 3, stored.CurrentQty)
}
