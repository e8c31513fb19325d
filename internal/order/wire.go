//go:build wireinject
// +build wireinject

package order

import (
	"database/sql"

	"github.com/google/wire"
	"gorm.io/gorm"

	catalogdomain "github.com/tair/shop-admin/internal/catalog/domain"
	catalogrepo "github.com/tair/shop-admin/internal/catalog/repository"
	"github.com/tair/shop-admin/internal/order/delivery/http"
	"github.com/tair/shop-admin/internal/order/domain"
	"github.com/tair/shop-admin/internal/order/repository"
	"github.com/tair/shop-admin/internal/order/stock"
	"github.com/tair/shop-admin/internal/order/usecase/command"
	"github.com/tair/shop-admin/internal/order/usecase/query"
	"github.com/tair/shop-admin/kafka"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *sql.DB) domain.OrderRepository {
	return repository.NewPostgresOrderRepository(db)
}

// ProvideCatalogRepository provides the catalog repository backing the stock port
func ProvideCatalogRepository(db *gorm.DB) catalogdomain.ProductRepository {
	return catalogrepo.NewGormProductRepository(db)
}

// ProvideStockConsumer provides the stock ledger port
func ProvideStockConsumer(repo catalogdomain.ProductRepository) domain.StockConsumer {
	return stock.NewCatalogConsumer(repo)
}

// Command Handlers Providers
func ProvidePlaceOrderHandler(repo domain.OrderRepository, stockConsumer domain.StockConsumer) *command.PlaceOrderHandler {
	return command.NewPlaceOrderHandler(repo, stockConsumer)
}

func ProvideUpdateStatusHandler(repo domain.OrderRepository) *command.UpdateStatusHandler {
	return command.NewUpdateStatusHandler(repo)
}

func ProvideDeleteOrderHandler(repo domain.OrderRepository) *command.DeleteOrderHandler {
	return command.NewDeleteOrderHandler(repo)
}

// Query Handlers Providers
func ProvideGetOrderHandler(repo domain.OrderRepository) *query.GetOrderHandler {
	return query.NewGetOrderHandler(repo)
}

func ProvideListOrdersHandler(repo domain.OrderRepository) *query.ListOrdersHandler {
	return query.NewListOrdersHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
	ProvideCatalogRepository,
	ProvideStockConsumer,
)

var CommandHandlerSet = wire.NewSet(
	ProvidePlaceOrderHandler,
	ProvideUpdateStatusHandler,
	ProvideDeleteOrderHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetOrderHandler,
	ProvideListOrdersHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes the order HTTP handler with all dependencies
func InitializeHTTPHandler(db *sql.DB, gormDB *gorm.DB, publisher *kafka.Publisher) (*http.OrderHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewOrderHandlerWithDI,
	)
	return nil, nil
}
