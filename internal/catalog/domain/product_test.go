package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyConsumption(t *testing.T) {
	tests := []struct {
		name          string
		countInStock  int
		currentQty    int
		qty           int
		wantQty       int
		wantRestocked bool
	}{
		{"consumes from live stock", 10, 5, 2, 3, false},
		{"depleted counter replenishes first", 10, 0, 3, 7, true},
		{"negative counter replenishes first", 10, -2, 3, 7, true},
		{"overshoot goes negative after restock", 5, 0, 8, -3, true},
		{"exact depletion does not restock", 10, 5, 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{CountInStock: tt.countInStock, CurrentQty: tt.currentQty}
			restocked := p.ApplyConsumption(tt.qty)
			assert.Equal(t, tt.wantQty, p.CurrentQty)
			assert.Equal(t, tt.wantRestocked, restocked)
		})
	}
}

func TestIsLowStock(t *testing.T) {
	p := Product{CurrentQty: 4, ReOrderQty: 3}
	assert.False(t, p.IsLowStock())

	p.CurrentQty = 3
	assert.True(t, p.IsLowStock())
}

func TestRecalcReviewAggregates(t *testing.T) {
	p := Product{Reviews: ReviewList{
		{ID: "a", UserID: 1, Rating: 5},
		{ID: "b", UserID: 2, Rating: 2},
	}}

	p.RecalcReviewAggregates()
	assert.Equal(t, 2, p.NumReviews)
	assert.InDelta(t, 3.5, p.Rating, 1e-9)

	require.True(t, p.RemoveReview("a"))
	p.RecalcReviewAggregates()
	assert.Equal(t, 1, p.NumReviews)
	assert.InDelta(t, 2.0, p.Rating, 1e-9)

	require.True(t, p.RemoveReview("b"))
	p.RecalcReviewAggregates()
	assert.Equal(t, 0, p.NumReviews)
	assert.Zero(t, p.Rating)
}

func TestReviewLookups(t *testing.T) {
	p := Product{Reviews: ReviewList{
		{ID: "a", UserID: 1},
		{ID: "b", UserID: 2},
	}}

	require.NotNil(t, p.ReviewBy(2))
	assert.Equal(t, "b", p.ReviewBy(2).ID)
	assert.Nil(t, p.ReviewBy(99))

	require.NotNil(t, p.FindReview("a"))
	assert.Nil(t, p.FindReview("missing"))
	assert.False(t, p.RemoveReview("missing"))
}

func TestRemoveInquiryIsIdempotent(t *testing.T) {
	p := Product{Inquiries: InquiryList{{ID: "q1"}}}

	assert.True(t, p.RemoveInquiry("q1"))
	assert.False(t, p.RemoveInquiry("q1"))

	p.RecalcInquiryCount()
	assert.Zero(t, p.NumInquiries)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("buyer@example.com"))
	assert.False(t, ValidEmail("buyer@example"))
	assert.False(t, ValidEmail("not an email"))
	assert.False(t, ValidEmail("@example.com"))
}
