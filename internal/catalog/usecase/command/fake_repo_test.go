package command

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// fakeProductRepo is an in-memory ProductRepository with the same
// compare-and-swap semantics as the gorm implementation, so the retry loops
// in the commands are exercised for real. The beforeUpdate hook runs inside
// UpdateVersioned before the version check, letting tests interleave a
// competing writer at the worst possible moment.
type fakeProductRepo struct {
	mu        sync.Mutex
	nextID    uint
	products  map[uint]*domain.Product
	movements []domain.StockMovement

	beforeUpdate   func()
	alwaysConflict bool
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1, products: make(map[uint]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	raw, _ := json.Marshal(p)
	var out domain.Product
	_ = json.Unmarshal(raw, &out)
	return &out
}

func (r *fakeProductRepo) seed(p *domain.Product) *domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.products[p.ID] = cloneProduct(p)
	return p
}

func (r *fakeProductRepo) Create(p *domain.Product) error {
	r.seed(p)
	return nil
}

func (r *fakeProductRepo) FindByID(id uint) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneProduct(p), nil
}

func (r *fakeProductRepo) FindBySKU(sku string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SKU == sku {
			return cloneProduct(p), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeProductRepo) FindAll(limit, offset int) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Product
	for _, p := range r.products {
		out = append(out, *cloneProduct(p))
	}
	return out, nil
}

func (r *fakeProductRepo) FindByCategory(category string, limit, offset int) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, *cloneProduct(p))
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *fakeProductRepo) UpdateVersioned(p *domain.Product) error {
	if hook := r.takeHook(); hook != nil {
		hook()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.alwaysConflict {
		return domain.ErrConflict
	}
	stored, ok := r.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Version != p.Version {
		return domain.ErrConflict
	}
	p.Version++
	r.products[p.ID] = cloneProduct(p)
	return nil
}

// takeHook pops the hook so a competing writer triggered from inside it does
// not recurse.
func (r *fakeProductRepo) takeHook() func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	hook := r.beforeUpdate
	r.beforeUpdate = nil
	return hook
}

func (r *fakeProductRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) RecordMovement(m *domain.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.LineKey != "" {
		for i := range r.movements {
			if r.movements[i].LineKey == m.LineKey {
				return fmt.Errorf("duplicate line key %q", m.LineKey)
			}
		}
	}
	m.ID = uint(len(r.movements) + 1)
	r.movements = append(r.movements, *m)
	return nil
}

func (r *fakeProductRepo) FindMovementByLineKey(lineKey string) (*domain.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.movements {
		if r.movements[i].LineKey == lineKey {
			m := r.movements[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) CountLowStock() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, p := range r.products {
		if p.CurrentQty <= p.ReOrderQty {
			count++
		}
	}
	return count, nil
}
