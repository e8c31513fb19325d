package command

import (
	"github.com/tair/shop-admin/internal/catalog/domain"
)

// DeleteInquiryCommand represents the command to delete an inquiry
type DeleteInquiryCommand struct {
	ProductID uint
	InquiryID string
}

// DeleteInquiryHandler handles the delete inquiry command
type DeleteInquiryHandler struct {
	repo domain.ProductRepository
}

// NewDeleteInquiryHandler creates a new delete inquiry handler
func NewDeleteInquiryHandler(repo domain.ProductRepository) *DeleteInquiryHandler {
	return &DeleteInquiryHandler{repo: repo}
}

// Handle executes the delete inquiry command. A missing inquiry id is
// tolerated as a no-op removal; only a missing product fails.
func (h *DeleteInquiryHandler) Handle(cmd DeleteInquiryCommand) (*domain.Product, error) {
	product, err := mutateProduct(h.repo, cmd.ProductID, func(p *domain.Product) error {
		p.RemoveInquiry(cmd.InquiryID)
		p.RecalcInquiryCount()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}
