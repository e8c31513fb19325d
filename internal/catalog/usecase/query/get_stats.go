package query

import (
	"fmt"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// GetStatsQuery represents the query to get catalog statistics
type GetStatsQuery struct{}

// CatalogStats represents catalog statistics
type CatalogStats struct {
	TotalProducts   int64   `json:"total_products"`
	LowStock        int64   `json:"low_stock"`
	TotalReviews    int64   `json:"total_reviews"`
	TotalInquiries  int64   `json:"total_inquiries"`
	AverageRating   float64 `json:"average_rating"`
	TotalCategories int64   `json:"total_categories"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(query GetStatsQuery) (*CatalogStats, error) {
	totalProducts, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to get product count: %w", err)
	}

	lowStock, err := h.repo.CountLowStock()
	if err != nil {
		return nil, fmt.Errorf("failed to get low stock count: %w", err)
	}

	products, err := h.repo.FindAll(10000, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	var totalReviews, totalInquiries int64
	var ratingSum float64
	var rated int64
	categories := make(map[string]bool)

	for i := range products {
		totalReviews += int64(products[i].NumReviews)
		totalInquiries += int64(products[i].NumInquiries)
		if products[i].NumReviews > 0 {
			ratingSum += products[i].Rating
			rated++
		}
		if products[i].Category != "" {
			categories[products[i].Category] = true
		}
	}

	averageRating := 0.0
	if rated > 0 {
		averageRating = ratingSum / float64(rated)
	}

	return &CatalogStats{
		TotalProducts:   totalProducts,
		LowStock:        lowStock,
		TotalReviews:    totalReviews,
		TotalInquiries:  totalInquiries,
		AverageRating:   averageRating,
		TotalCategories: int64(len(categories)),
	}, nil
}
