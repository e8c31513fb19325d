//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/shop-admin/internal/catalog/delivery/http"
	"github.com/tair/shop-admin/internal/catalog/domain"
	"github.com/tair/shop-admin/internal/catalog/repository"
	"github.com/tair/shop-admin/internal/catalog/usecase/command"
	"github.com/tair/shop-admin/internal/catalog/usecase/query"
)

// ProvideProductRepository provides the catalog repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepository(db)
}

// Command Handlers Providers
func ProvideCreateProductHandler(repo domain.ProductRepository) *command.CreateProductHandler {
	return command.NewCreateProductHandler(repo)
}

func ProvideUpdateProductHandler(repo domain.ProductRepository) *command.UpdateProductHandler {
	return command.NewUpdateProductHandler(repo)
}

func ProvideDeleteProductHandler(repo domain.ProductRepository) *command.DeleteProductHandler {
	return command.NewDeleteProductHandler(repo)
}

func ProvideUpdateStockHandler(repo domain.ProductRepository) *command.UpdateStockHandler {
	return command.NewUpdateStockHandler(repo)
}

func ProvideAddReviewHandler(repo domain.ProductRepository) *command.AddReviewHandler {
	return command.NewAddReviewHandler(repo)
}

func ProvideUpdateReviewHandler(repo domain.ProductRepository) *command.UpdateReviewHandler {
	return command.NewUpdateReviewHandler(repo)
}

func ProvideDeleteReviewHandler(repo domain.ProductRepository) *command.DeleteReviewHandler {
	return command.NewDeleteReviewHandler(repo)
}

func ProvideAddInquiryHandler(repo domain.ProductRepository) *command.AddInquiryHandler {
	return command.NewAddInquiryHandler(repo)
}

func ProvideDeleteInquiryHandler(repo domain.ProductRepository) *command.DeleteInquiryHandler {
	return command.NewDeleteInquiryHandler(repo)
}

func ProvideAddReplyHandler(repo domain.ProductRepository) *command.AddReplyHandler {
	return command.NewAddReplyHandler(repo)
}

// Query Handlers Providers
func ProvideGetProductHandler(repo domain.ProductRepository) *query.GetProductHandler {
	return query.NewGetProductHandler(repo)
}

func ProvideListProductsHandler(repo domain.ProductRepository) *query.ListProductsHandler {
	return query.NewListProductsHandler(repo)
}

func ProvideGetReviewHandler(repo domain.ProductRepository) *query.GetReviewHandler {
	return query.NewGetReviewHandler(repo)
}

func ProvideGetInquiryHandler(repo domain.ProductRepository) *query.GetInquiryHandler {
	return query.NewGetInquiryHandler(repo)
}

func ProvideGetStatsHandler(repo domain.ProductRepository) *query.GetStatsHandler {
	return query.NewGetStatsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateProductHandler,
	ProvideUpdateProductHandler,
	ProvideDeleteProductHandler,
	ProvideUpdateStockHandler,
	ProvideAddReviewHandler,
	ProvideUpdateReviewHandler,
	ProvideDeleteReviewHandler,
	ProvideAddInquiryHandler,
	ProvideDeleteInquiryHandler,
	ProvideAddReplyHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetProductHandler,
	ProvideListProductsHandler,
	ProvideGetReviewHandler,
	ProvideGetInquiryHandler,
	ProvideGetStatsHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes the catalog HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.CatalogHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewCatalogHandlerWithDI,
	)
	return nil, nil
}
