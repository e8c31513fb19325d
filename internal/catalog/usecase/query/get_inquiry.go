package query

import (
	"fmt"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// GetInquiryQuery represents the query to get a single inquiry
type GetInquiryQuery struct {
	ProductID uint
	InquiryID string
}

// InquiryDetails is an inquiry enriched with its parent product for display.
type InquiryDetails struct {
	domain.Inquiry
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
}

// GetInquiryHandler handles get inquiry query
type GetInquiryHandler struct {
	repo domain.ProductRepository
}

// NewGetInquiryHandler creates a new get inquiry handler
func NewGetInquiryHandler(repo domain.ProductRepository) *GetInquiryHandler {
	return &GetInquiryHandler{repo: repo}
}

// Handle executes the get inquiry query
func (h *GetInquiryHandler) Handle(query GetInquiryQuery) (*InquiryDetails, error) {
	product, err := h.repo.FindByID(query.ProductID)
	if err != nil {
		return nil, err
	}

	inquiry := product.FindInquiry(query.InquiryID)
	if inquiry == nil {
		return nil, fmt.Errorf("%w: inquiry %s", domain.ErrNotFound, query.InquiryID)
	}

	return &InquiryDetails{
		Inquiry:     *inquiry,
		ProductID:   product.ID,
		ProductName: product.Name,
	}, nil
}
