package command

import (
	"fmt"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update a catalog entry.
// Stock counters, reviews and inquiries are owned by their own commands and
// are left untouched here.
type UpdateProductCommand struct {
	ID           uint
	Name         string
	Brand        string
	Category     string
	Description  string
	Image        string
	SKU          string
	Barcode      string
	BuyingPrice  float64
	SellingPrice float64
	Discount     float64
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrValidation)
	}
	if err := validateProductFields(cmd.Name, cmd.Brand, cmd.Description, cmd.Category, cmd.SKU, cmd.Barcode); err != nil {
		return nil, err
	}
	if cmd.Discount < 0 || cmd.Discount > 100 {
		return nil, fmt.Errorf("%w: discount must be a percentage between 0 and 100", domain.ErrValidation)
	}

	product, err := mutateProduct(h.repo, cmd.ID, func(p *domain.Product) error {
		p.Name = cmd.Name
		p.Brand = cmd.Brand
		p.Category = cmd.Category
		p.Description = cmd.Description
		p.Image = cmd.Image
		p.SKU = cmd.SKU
		p.Barcode = cmd.Barcode
		p.BuyingPrice = cmd.BuyingPrice
		p.SellingPrice = cmd.SellingPrice
		p.Discount = cmd.Discount
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}
