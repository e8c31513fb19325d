package query

import (
	"fmt"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// GetReviewQuery represents the query to get a single review
type GetReviewQuery struct {
	ProductID uint
	ReviewID  string
}

// ReviewDetails is a review enriched with its parent product for display.
type ReviewDetails struct {
	domain.Review
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
}

// GetReviewHandler handles get review query
type GetReviewHandler struct {
	repo domain.ProductRepository
}

// NewGetReviewHandler creates a new get review handler
func NewGetReviewHandler(repo domain.ProductRepository) *GetReviewHandler {
	return &GetReviewHandler{repo: repo}
}

// Handle executes the get review query
func (h *GetReviewHandler) Handle(query GetReviewQuery) (*ReviewDetails, error) {
	product, err := h.repo.FindByID(query.ProductID)
	if err != nil {
		return nil, err
	}

	review := product.FindReview(query.ReviewID)
	if review == nil {
		return nil, fmt.Errorf("%w: review %s", domain.ErrNotFound, query.ReviewID)
	}

	return &ReviewDetails{
		Review:      *review,
		ProductID:   product.ID,
		ProductName: product.Name,
	}, nil
}
