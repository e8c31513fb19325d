package stock

import (
	"errors"
	"fmt"

	catalogdomain "github.com/tair/shop-admin/internal/catalog/domain"
	"github.com/tair/shop-admin/internal/catalog/usecase/command"
	"github.com/tair/shop-admin/internal/order/domain"
)

// CatalogConsumer adapts the catalog's consume-stock command to the order
// service's StockConsumer port. Both services share the database, so the
// ledger mutation runs in-process against the catalog repository.
type CatalogConsumer struct {
	consume *command.ConsumeStockHandler
}

// NewCatalogConsumer creates a stock consumer backed by the catalog ledger
func NewCatalogConsumer(repo catalogdomain.ProductRepository) *CatalogConsumer {
	return &CatalogConsumer{consume: command.NewConsumeStockHandler(repo)}
}

// Consume draws quantity units of the product, translating catalog errors
// into the order domain's vocabulary.
func (c *CatalogConsumer) Consume(productID uint, quantity int, lineKey string) (*domain.StockResult, error) {
	res, err := c.consume.Handle(command.ConsumeStockCommand{
		ProductID: productID,
		Quantity:  quantity,
		LineKey:   lineKey,
	})
	if err != nil {
		if errors.Is(err, catalogdomain.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %d", domain.ErrStockItemNotFound, productID)
		}
		return nil, err
	}

	return &domain.StockResult{
		CurrentQty: res.CurrentQty,
		Restocked:  res.Restocked,
		Replayed:   res.Replayed,
	}, nil
}
