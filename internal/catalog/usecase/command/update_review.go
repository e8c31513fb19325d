package command

import (
	"fmt"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// UpdateReviewCommand represents the command to update an existing review
type UpdateReviewCommand struct {
	ProductID uint
	ReviewID  string
	Rating    int
	Comment   string
}

// UpdateReviewHandler handles the update review command
type UpdateReviewHandler struct {
	repo domain.ProductRepository
}

// NewUpdateReviewHandler creates a new update review handler
func NewUpdateReviewHandler(repo domain.ProductRepository) *UpdateReviewHandler {
	return &UpdateReviewHandler{repo: repo}
}

// Handle executes the update review command and recomputes the product
// rating from the full collection.
func (h *UpdateReviewHandler) Handle(cmd UpdateReviewCommand) (*domain.Product, error) {
	if err := validateReviewContent(cmd.Rating, cmd.Comment); err != nil {
		return nil, err
	}

	product, err := mutateProduct(h.repo, cmd.ProductID, func(p *domain.Product) error {
		review := p.FindReview(cmd.ReviewID)
		if review == nil {
			return fmt.Errorf("%w: review %s", domain.ErrNotFound, cmd.ReviewID)
		}

		review.Rating = cmd.Rating
		review.Comment = cmd.Comment
		p.RecalcReviewAggregates()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}
