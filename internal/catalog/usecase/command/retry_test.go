package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// A product that keeps changing under the writer eventually surfaces as a
// concurrent-modification failure instead of spinning forever.
func TestMutateProduct_ConflictExhaustionFails(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)
	repo.alwaysConflict = true

	_, err := NewAddReviewHandler(repo).Handle(addReviewCmd(p.ID, 1, 4))
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestMutateProduct_MutationErrorIsNotRetried(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)

	calls := 0
	_, err := mutateProduct(repo, p.ID, func(*domain.Product) error {
		calls++
		return domain.ErrValidation
	})
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Equal(t, 1, calls)
}
