package command

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// AddReviewCommand represents the command to add a review to a product.
// UserID and UserName come from the authenticated identity; ImageSize is the
// declared byte size of the uploaded image held by the object store.
type AddReviewCommand struct {
	ProductID uint
	UserID    uint
	UserName  string
	Rating    int
	Comment   string
	Email     string
	Image     string
	ImageSize int64
}

// AddReviewHandler handles the add review command
type AddReviewHandler struct {
	repo domain.ProductRepository
}

// NewAddReviewHandler creates a new add review handler
func NewAddReviewHandler(repo domain.ProductRepository) *AddReviewHandler {
	return &AddReviewHandler{repo: repo}
}

// Handle executes the add review command. One review per (product, user);
// the duplicate check runs against the freshly read document inside the
// versioned write cycle, so two racing reviews from the same user cannot
// both land.
func (h *AddReviewHandler) Handle(cmd AddReviewCommand) (*domain.Review, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("%w: user is required", domain.ErrValidation)
	}
	if err := validateReviewContent(cmd.Rating, cmd.Comment); err != nil {
		return nil, err
	}
	if cmd.Email != "" && !domain.ValidEmail(cmd.Email) {
		return nil, fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	if cmd.ImageSize > domain.MaxReviewImageBytes {
		return nil, fmt.Errorf("%w: image must not exceed 2 MiB", domain.ErrPayloadTooLarge)
	}

	var review domain.Review
	_, err := mutateProduct(h.repo, cmd.ProductID, func(p *domain.Product) error {
		if p.ReviewBy(cmd.UserID) != nil {
			return fmt.Errorf("%w: user %d", domain.ErrDuplicateReview, cmd.UserID)
		}

		review = domain.Review{
			ID:        uuid.NewString(),
			UserID:    cmd.UserID,
			Name:      cmd.UserName,
			Rating:    cmd.Rating,
			Comment:   cmd.Comment,
			Email:     cmd.Email,
			Image:     cmd.Image,
			CreatedAt: time.Now(),
		}
		p.Reviews = append(p.Reviews, review)
		p.RecalcReviewAggregates()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &review, nil
}

// validateReviewContent enforces the rating and comment rules shared by add
// and update; both entry points apply the same rule set.
func validateReviewContent(rating int, comment string) error {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", domain.ErrValidation, domain.MinRating, domain.MaxRating)
	}
	if comment == "" {
		return fmt.Errorf("%w: comment is required", domain.ErrValidation)
	}
	if len(comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment must not exceed %d characters", domain.ErrValidation, domain.MaxCommentLength)
	}
	return nil
}
