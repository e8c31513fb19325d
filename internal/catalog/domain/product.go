package domain

import (
	"time"

	"gorm.io/gorm"
)

// Product is the aggregate root of the catalog. Reviews, inquiries and the
// stock counters all live on this one record; every mutation goes through a
// versioned read-modify-write cycle so concurrent writers to disjoint fields
// cannot lose each other's updates.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Brand       string  `json:"brand" gorm:"not null"`
	Category    string  `json:"category" gorm:"not null;index"`
	Description string  `json:"description" gorm:"not null"`
	Image       string  `json:"image"`
	SKU         string  `json:"sku" gorm:"uniqueIndex;not null"`
	Barcode     string  `json:"barcode" gorm:"not null"`
	BuyingPrice  float64 `json:"buying_price"`
	SellingPrice float64 `json:"selling_price"`
	Discount     float64 `json:"discount"` // percentage, 0-100

	// Stock counters. CountInStock is the nominal restock level, CurrentQty
	// the live sellable quantity, ReOrderQty an advisory threshold.
	CountInStock int `json:"count_in_stock" gorm:"not null;default:0"`
	CurrentQty   int `json:"current_qty" gorm:"not null;default:0"`
	ReOrderQty   int `json:"re_order_qty" gorm:"not null;default:0"`

	// Derived aggregates, recomputed in full on every mutation of the
	// collections they summarize.
	Rating       float64 `json:"rating" gorm:"not null;default:0"`
	NumReviews   int     `json:"num_reviews" gorm:"not null;default:0"`
	NumInquiries int     `json:"num_inquiries" gorm:"not null;default:0"`

	Reviews   ReviewList  `json:"reviews" gorm:"type:jsonb"`
	Inquiries InquiryList `json:"inquiries" gorm:"type:jsonb"`

	// Version guards every read-modify-write; bumped by UpdateVersioned.
	Version int64 `json:"version" gorm:"not null;default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ApplyConsumption subtracts qty from the live stock, replenishing to the
// nominal level first when the counter is found at or below zero. The result
// may go negative when qty exceeds the replenished amount; callers decide
// whether to surface that. Reports whether a restock cycle ran.
func (p *Product) ApplyConsumption(qty int) (restocked bool) {
	if p.CurrentQty <= 0 {
		p.CurrentQty = p.CountInStock
		restocked = true
	}
	p.CurrentQty -= qty
	return restocked
}

// IsLowStock reports whether the live stock has reached the reorder threshold.
func (p *Product) IsLowStock() bool {
	return p.CurrentQty <= p.ReOrderQty
}

// ReviewBy returns the review written by the given user, or nil.
func (p *Product) ReviewBy(userID uint) *Review {
	for i := range p.Reviews {
		if p.Reviews[i].UserID == userID {
			return &p.Reviews[i]
		}
	}
	return nil
}

// FindReview returns the review with the given id, or nil.
func (p *Product) FindReview(reviewID string) *Review {
	for i := range p.Reviews {
		if p.Reviews[i].ID == reviewID {
			return &p.Reviews[i]
		}
	}
	return nil
}

// RemoveReview deletes the review with the given id and reports whether it
// was present. Aggregates are not touched; call RecalcReviewAggregates.
func (p *Product) RemoveReview(reviewID string) bool {
	for i := range p.Reviews {
		if p.Reviews[i].ID == reviewID {
			p.Reviews = append(p.Reviews[:i], p.Reviews[i+1:]...)
			return true
		}
	}
	return false
}

// FindInquiry returns the inquiry with the given id, or nil.
func (p *Product) FindInquiry(inquiryID string) *Inquiry {
	for i := range p.Inquiries {
		if p.Inquiries[i].ID == inquiryID {
			return &p.Inquiries[i]
		}
	}
	return nil
}

// RemoveInquiry deletes the inquiry with the given id if present. A missing
// id is a no-op; removal has set semantics.
func (p *Product) RemoveInquiry(inquiryID string) bool {
	for i := range p.Inquiries {
		if p.Inquiries[i].ID == inquiryID {
			p.Inquiries = append(p.Inquiries[:i], p.Inquiries[i+1:]...)
			return true
		}
	}
	return false
}

// RecalcReviewAggregates recomputes NumReviews and Rating from the live
// collection. Full recomputation keeps the aggregates correct after any
// add/update/delete sequence; an empty collection yields rating 0.
func (p *Product) RecalcReviewAggregates() {
	p.NumReviews = len(p.Reviews)
	if p.NumReviews == 0 {
		p.Rating = 0
		return
	}
	sum := 0
	for i := range p.Reviews {
		sum += p.Reviews[i].Rating
	}
	p.Rating = float64(sum) / float64(p.NumReviews)
}

// RecalcInquiryCount recomputes NumInquiries from the live collection.
func (p *Product) RecalcInquiryCount() {
	p.NumInquiries = len(p.Inquiries)
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindBySKU(sku string) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	FindByCategory(category string, limit, offset int) ([]Product, error)
	Update(product *Product) error
	// UpdateVersioned persists the product only if its Version still matches
	// the stored row, bumping the version on success. Returns ErrConflict
	// when another writer got there first.
	UpdateVersioned(product *Product) error
	Delete(id uint) error
	Count() (int64, error)

	// Stock movement audit log
	RecordMovement(movement *StockMovement) error
	FindMovementByLineKey(lineKey string) (*StockMovement, error)
	CountLowStock() (int64, error)
}
