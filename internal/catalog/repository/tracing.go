package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormProductRepositoryWithTracing wraps GormProductRepository with tracing
type GormProductRepositoryWithTracing struct {
	*GormProductRepository
}

// NewGormProductRepositoryWithTracing creates a new repository with tracing
func NewGormProductRepositoryWithTracing(db *gorm.DB) *GormProductRepositoryWithTracing {
	return &GormProductRepositoryWithTracing{
		GormProductRepository: NewGormProductRepository(db),
	}
}

// FindByID with tracing
func (r *GormProductRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
		),
	)
	defer span.End()

	product, err := r.GormProductRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.String("product.sku", product.SKU),
		attribute.Int("product.current_qty", product.CurrentQty),
		attribute.Int64("product.version", product.Version),
	)
	return product, nil
}

// UpdateVersioned with tracing; version conflicts are recorded on the span
// so contention shows up in traces.
func (r *GormProductRepositoryWithTracing) UpdateVersionedWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.UpdateVersioned",
		trace.WithAttributes(
			attribute.Int("product.id", int(product.ID)),
			attribute.Int64("product.version", product.Version),
		),
	)
	defer span.End()

	err := r.GormProductRepository.UpdateVersioned(product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Create with tracing
func (r *GormProductRepositoryWithTracing) CreateWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.String("product.sku", product.SKU),
			attribute.String("product.category", product.Category),
			attribute.Int("product.count_in_stock", product.CountInStock),
		),
	)
	defer span.End()

	err := r.GormProductRepository.Create(product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

// RecordMovement with tracing
func (r *GormProductRepositoryWithTracing) RecordMovementWithContext(ctx context.Context, movement *domain.StockMovement) error {
	_, span := tracer.Start(ctx, "repository.RecordMovement",
		trace.WithAttributes(
			attribute.Int("product.id", int(movement.ProductID)),
			attribute.String("movement.kind", movement.Kind),
			attribute.Int("movement.quantity", movement.Quantity),
		),
	)
	defer span.End()

	err := r.GormProductRepository.RecordMovement(movement)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
