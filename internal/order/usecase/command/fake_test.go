package command

import (
	"fmt"
	"time"

	"github.com/tair/shop-admin/internal/order/domain"
)

// fakeOrderRepo is an in-memory OrderRepository.
type fakeOrderRepo struct {
	nextID uint
	orders map[uint]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1, orders: make(map[uint]*domain.Order)}
}

func (r *fakeOrderRepo) Create(order *domain.Order) error {
	order.ID = r.nextID
	r.nextID++
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) FindByID(id uint) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) FindAll(limit, offset int) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) FindByUserID(userID uint, limit, offset int) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(id uint, status string) error {
	order, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return nil
}

func (r *fakeOrderRepo) Delete(id uint) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) Count() (int, error) {
	return len(r.orders), nil
}

// fakeStock is a scripted StockConsumer. Unknown products report not found;
// products listed in failing return a generic failure.
type fakeStock struct {
	qty     map[uint]int
	restock map[uint]int
	failing map[uint]bool
	calls   []string
}

func newFakeStock() *fakeStock {
	return &fakeStock{
		qty:     make(map[uint]int),
		restock: make(map[uint]int),
		failing: make(map[uint]bool),
	}
}

func (s *fakeStock) Consume(productID uint, quantity int, lineKey string) (*domain.StockResult, error) {
	s.calls = append(s.calls, lineKey)

	if s.failing[productID] {
		return nil, fmt.Errorf("ledger write failed for product %d", productID)
	}
	current, ok := s.qty[productID]
	if !ok {
		return nil, fmt.Errorf("%w: product %d", domain.ErrStockItemNotFound, productID)
	}

	restocked := false
	if current <= 0 {
		current = s.restock[productID]
		restocked = true
	}
	current -= quantity
	s.qty[productID] = current

	return &domain.StockResult{CurrentQty: current, Restocked: restocked}, nil
}
