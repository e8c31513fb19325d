package repository

import (
	"errors"

	"github.com/tair/shop-admin/internal/catalog/domain"
	"gorm.io/gorm"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{}, &domain.StockMovement{})
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindBySKU(sku string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("sku = ?", sku).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByCategory(category string, limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("category = ?", category).Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

// UpdateVersioned is the compare-and-swap behind every read-modify-write on
// the product aggregate. The write only lands if the row still carries the
// version the caller observed; otherwise the caller gets ErrConflict and is
// expected to re-read and retry.
func (r *GormProductRepository) UpdateVersioned(product *domain.Product) error {
	observed := product.Version
	product.Version = observed + 1

	res := r.db.Model(product).
		Where("version = ?", observed).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(product)
	if res.Error != nil {
		product.Version = observed
		return res.Error
	}
	if res.RowsAffected == 0 {
		product.Version = observed
		return domain.ErrConflict
	}
	return nil
}

func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Product{}, id).Error
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}

func (r *GormProductRepository) RecordMovement(movement *domain.StockMovement) error {
	return r.db.Create(movement).Error
}

// FindMovementByLineKey returns the movement recorded for the given order
// line, or nil when the line has not been applied yet.
func (r *GormProductRepository) FindMovementByLineKey(lineKey string) (*domain.StockMovement, error) {
	var movement domain.StockMovement
	err := r.db.Where("line_key = ?", lineKey).First(&movement).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movement, nil
}

func (r *GormProductRepository) CountLowStock() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Where("current_qty <= re_order_qty").Count(&count).Error
	return count, err
}
