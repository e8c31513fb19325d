package command

import (
	"fmt"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// DeleteReviewCommand represents the command to delete a review
type DeleteReviewCommand struct {
	ProductID uint
	ReviewID  string
}

// DeleteReviewHandler handles the delete review command
type DeleteReviewHandler struct {
	repo domain.ProductRepository
}

// NewDeleteReviewHandler creates a new delete review handler
func NewDeleteReviewHandler(repo domain.ProductRepository) *DeleteReviewHandler {
	return &DeleteReviewHandler{repo: repo}
}

// Handle executes the delete review command. Deleting the last review
// resets the rating to 0 rather than leaving a division-by-zero artifact.
func (h *DeleteReviewHandler) Handle(cmd DeleteReviewCommand) (*domain.Product, error) {
	product, err := mutateProduct(h.repo, cmd.ProductID, func(p *domain.Product) error {
		if !p.RemoveReview(cmd.ReviewID) {
			return fmt.Errorf("%w: review %s", domain.ErrNotFound, cmd.ReviewID)
		}
		p.RecalcReviewAggregates()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}
