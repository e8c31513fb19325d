package command

import (
	"fmt"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a catalog entry
type CreateProductCommand struct {
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
	CountInStock int
	CurrentQty   int
	ReOrderQty   int
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command. Required-field validation is
// short-circuiting: the first missing field is the one reported.
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if err := validateProductFields(cmd.Name, cmd.Brand, cmd.Description, cmd.Category, cmd.SKU, cmd.Barcode); err != nil {
		return nil, err
	}
	if cmd.Discount < 0 || cmd.Discount > 100 {
		return nil, fmt.Errorf("%w: discount must be a percentage between 0 and 100", domain.ErrValidation)
	}
	if cmd.BuyingPrice < 0 || cmd.SellingPrice < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	if cmd.CountInStock < 0 || cmd.CurrentQty < 0 || cmd.ReOrderQty < 0 {
		return nil, fmt.Errorf("%w: stock counters cannot be negative", domain.ErrValidation)
	}

	if existing, _ := h.repo.FindBySKU(cmd.SKU); existing != nil {
		return nil, fmt.Errorf("%w: SKU already exists", domain.ErrValidation)
	}

	product := &domain.Product{
		Name:         cmd.Name,
		Brand:        cmd.Brand,
		Category:     cmd.Category,
		Description:  cmd.Description,
		Image:        cmd.Image,
		SKU:          cmd.SKU,
		Barcode:      cmd.Barcode,
		BuyingPrice:  cmd.BuyingPrice,
		SellingPrice: cmd.SellingPrice,
		Discount:     cmd.Discount,
		CountInStock: cmd.CountInStock,
		CurrentQty:   cmd.CurrentQty,
		ReOrderQty:   cmd.ReOrderQty,
		Reviews:      domain.ReviewList{},
		Inquiries:    domain.InquiryList{},
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// validateProductFields reports the first missing required field, in the
// same order the dashboard checks them.
func validateProductFields(name, brand, description, category, sku, barcode string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	case brand == "":
		return fmt.Errorf("%w: brand is required", domain.ErrValidation)
	case description == "":
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	case category == "":
		return fmt.Errorf("%w: category is required", domain.ErrValidation)
	case sku == "":
		return fmt.Errorf("%w: sku is required", domain.ErrValidation)
	case barcode == "":
		return fmt.Errorf("%w: barcode is required", domain.ErrValidation)
	}
	return nil
}
