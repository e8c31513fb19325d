package command

import (
	"time"

	"github.com/google/uuid"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// AddInquiryCommand represents the command to add an inquiry to a product
type AddInquiryCommand struct {
	ProductID uint
	UserID    uint
	UserName  string
	Message   string
}

// AddInquiryHandler handles the add inquiry command
type AddInquiryHandler struct {
	repo domain.ProductRepository
}

// NewAddInquiryHandler creates a new add inquiry handler
func NewAddInquiryHandler(repo domain.ProductRepository) *AddInquiryHandler {
	return &AddInquiryHandler{repo: repo}
}

// Handle executes the add inquiry command
func (h *AddInquiryHandler) Handle(cmd AddInquiryCommand) (*domain.Inquiry, error) {
	var inquiry domain.Inquiry
	_, err := mutateProduct(h.repo, cmd.ProductID, func(p *domain.Product) error {
		inquiry = domain.Inquiry{
			ID:        uuid.NewString(),
			UserID:    cmd.UserID,
			Name:      cmd.UserName,
			Message:   cmd.Message,
			Replies:   []domain.Reply{},
			CreatedAt: time.Now(),
		}
		p.Inquiries = append(p.Inquiries, inquiry)
		p.RecalcInquiryCount()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &inquiry, nil
}
