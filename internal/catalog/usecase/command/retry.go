package command

import (
	"errors"
	"fmt"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// maxWriteAttempts bounds the read-modify-write retry cycle. Contention on a
// single product is short-lived; a write still conflicting after this many
// attempts surfaces as ErrConflict to the caller.
const maxWriteAttempts = 3

// mutateProduct runs one versioned read-modify-write cycle: load the product,
// apply mutate to the fresh copy, and compare-and-swap it back. A version
// conflict triggers a re-read and retry so concurrent writers to the same
// product document serialize instead of losing updates.
func mutateProduct(repo domain.ProductRepository, id uint, mutate func(*domain.Product) error) (*domain.Product, error) {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		product, err := repo.FindByID(id)
		if err != nil {
			return nil, err
		}

		if err := mutate(product); err != nil {
			return nil, err
		}

		err = repo.UpdateVersioned(product)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: product %d kept changing under us", domain.ErrConflict, id)
}
