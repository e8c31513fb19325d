package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

func seedProduct(repo *fakeProductRepo) *domain.Product {
	return repo.seed(&domain.Product{
		Name:        "Pour-Over Kettle",
		Brand:       "Brewline",
		Category:    "equipment",
		Description: "gooseneck, 1l",
		SKU:         "SKU-0002",
		Barcode:     "4712",
	})
}

func addReviewCmd(productID, userID uint, rating int) AddReviewCommand {
	return AddReviewCommand{
		ProductID: productID,
		UserID:    userID,
		UserName:  "reviewer",
		Rating:    rating,
		Comment:   "solid",
	}
}

func TestAddReview_KeepsAggregatesConsistent(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)
	handler := NewAddReviewHandler(repo)

	_, err := handler.Handle(addReviewCmd(p.ID, 1, 4))
	require.NoError(t, err)
	_, err = handler.Handle(addReviewCmd(p.ID, 2, 2))
	require.NoError(t, err)

	stored, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stored.NumReviews)
	require.Len(t, stored.Reviews, 2)
	require.InDelta(t, 3.0, stored.Rating, 1e-9)
}

func TestAddReview_RejectsDuplicateAuthor(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)
	handler := NewAddReviewHandler(repo)

	_, err := handler.Handle(addReviewCmd(p.ID, 1, 4))
	require.NoError(t, err)

	// An unrelated mutation in between must not reset the guard.
	_, err = handler.Handle(addReviewCmd(p.ID, 2, 5))
	require.NoError(t, err)

	_, err = handler.Handle(addReviewCmd(p.ID, 1, 3))
	require.ErrorIs(t, err, domain.ErrDuplicateReview)

	stored, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stored.NumReviews)
}

func TestAddReview_CommentLengthBoundary(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)
	handler := NewAddReviewHandler(repo)

	atLimit := addReviewCmd(p.ID, 1, 4)
	atLimit.Comment = strings.Repeat("x", domain.MaxCommentLength)
	_, err := handler.Handle(atLimit)
	require.NoError(t, err)

	overLimit := addReviewCmd(p.ID, 2, 4)
	overLimit.Comment = strings.Repeat("x", domain.MaxCommentLength+1)
	_, err = handler.Handle(overLimit)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestAddReview_RatingRange(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)
	handler := NewAddReviewHandler(repo)

	for _, rating := range []int{0, 6, -1} {
		_, err := handler.Handle(addReviewCmd(p.ID, 1, rating))
		require.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestAddReview_EmailShape(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)
	handler := NewAddReviewHandler(repo)

	bad := addReviewCmd(p.ID, 1, 4)
	bad.Email = "not-an-email"
	_, err := handler.Handle(bad)
	require.ErrorIs(t, err, domain.ErrValidation)

	good := addReviewCmd(p.ID, 1, 4)
	good.Email = "shopper@example.com"
	_, err = handler.Handle(good)
	require.NoError(t, err)
}

func TestAddReview_ImageSizeLimit(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)
	handler := NewAddReviewHandler(repo)

	cmd := addReviewCmd(p.ID, 1, 4)
	cmd.Image = "uploads/huge.png"
	cmd.ImageSize = domain.MaxReviewImageBytes + 1
	_, err := handler.Handle(cmd)
	require.ErrorIs(t, err, domain.ErrPayloadTooLarge)

	cmd.ImageSize = domain.MaxReviewImageBytes
	_, err = handler.Handle(cmd)
	require.NoError(t, err)
}

func TestAddReview_MissingProduct(t *testing.T) {
	repo := newFakeProductRepo()

	_, err := NewAddReviewHandler(repo).Handle(addReviewCmd(99, 1, 4))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Two reviewers race on the same product. The slower writer's CAS fails,
// it re-reads and retries; neither review may be lost.
func TestAddReview_ConcurrentWritersDoNotLoseUpdates(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)
	handler := NewAddReviewHandler(repo)

	repo.beforeUpdate = func() {
		_, err := handler.Handle(addReviewCmd(p.ID, 2, 2))
		require.NoError(t, err)
	}

	_, err := handler.Handle(addReviewCmd(p.ID, 1, 4))
	require.NoError(t, err)

	stored, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stored.NumReviews)
	require.InDelta(t, 3.0, stored.Rating, 1e-9)
}

func TestUpdateReview_RecomputesRating(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)

	review, err := NewAddReviewHandler(repo).Handle(addReviewCmd(p.ID, 1, 2))
	require.NoError(t, err)

	updated, err := NewUpdateReviewHandler(repo).Handle(UpdateReviewCommand{
		ProductID: p.ID,
		ReviewID:  review.ID,
		Rating:    5,
		Comment:   "better than expected",
	})
	require.NoError(t, err)
	require.InDelta(t, 5.0, updated.Rating, 1e-9)
	require.Equal(t, "better than expected", updated.Reviews[0].Comment)
}

func TestUpdateReview_AppliesSameValidationAsAdd(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)

	review, err := NewAddReviewHandler(repo).Handle(addReviewCmd(p.ID, 1, 2))
	require.NoError(t, err)

	_, err = NewUpdateReviewHandler(repo).Handle(UpdateReviewCommand{
		ProductID: p.ID,
		ReviewID:  review.ID,
		Rating:    5,
		Comment:   strings.Repeat("x", domain.MaxCommentLength+1),
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = NewUpdateReviewHandler(repo).Handle(UpdateReviewCommand{
		ProductID: p.ID,
		ReviewID:  review.ID,
		Rating:    0,
		Comment:   "fine",
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateReview_MissingReview(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)

	_, err := NewUpdateReviewHandler(repo).Handle(UpdateReviewCommand{
		ProductID: p.ID,
		ReviewID:  "no-such-review",
		Rating:    3,
		Comment:   "ok",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteReview_RecomputesAggregates(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)
	add := NewAddReviewHandler(repo)

	first, err := add.Handle(addReviewCmd(p.ID, 1, 5))
	require.NoError(t, err)
	_, err = add.Handle(addReviewCmd(p.ID, 2, 1))
	require.NoError(t, err)

	updated, err := NewDeleteReviewHandler(repo).Handle(DeleteReviewCommand{ProductID: p.ID, ReviewID: first.ID})
	require.NoError(t, err)
	require.Equal(t, 1, updated.NumReviews)
	require.InDelta(t, 1.0, updated.Rating, 1e-9)
}

func TestDeleteReview_LastReviewResetsRatingToZero(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)

	review, err := NewAddReviewHandler(repo).Handle(addReviewCmd(p.ID, 1, 5))
	require.NoError(t, err)

	updated, err := NewDeleteReviewHandler(repo).Handle(DeleteReviewCommand{ProductID: p.ID, ReviewID: review.ID})
	require.NoError(t, err)
	require.Equal(t, 0, updated.NumReviews)
	require.Zero(t, updated.Rating)
}

func TestDeleteReview_MissingReview(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)

	_, err := NewDeleteReviewHandler(repo).Handle(DeleteReviewCommand{ProductID: p.ID, ReviewID: "nope"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
