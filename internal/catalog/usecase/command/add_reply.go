package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

// AddReplyCommand represents the command to append a reply to an inquiry
type AddReplyCommand struct {
	ProductID uint
	InquiryID string
	Message   string
}

// AddReplyHandler handles the add reply command
type AddReplyHandler struct {
	repo domain.ProductRepository
}

// NewAddReplyHandler creates a new add reply handler
func NewAddReplyHandler(repo domain.ProductRepository) *AddReplyHandler {
	return &AddReplyHandler{repo: repo}
}

// Handle executes the add reply command. Replies are an append-only log:
// insertion order is the thread order and entries are never edited.
func (h *AddReplyHandler) Handle(cmd AddReplyCommand) (*domain.Reply, error) {
	if strings.TrimSpace(cmd.Message) == "" {
		return nil, fmt.Errorf("%w: reply message cannot be empty", domain.ErrValidation)
	}

	var reply domain.Reply
	_, err := mutateProduct(h.repo, cmd.ProductID, func(p *domain.Product) error {
		inquiry := p.FindInquiry(cmd.InquiryID)
		if inquiry == nil {
			return fmt.Errorf("%w: inquiry %s", domain.ErrNotFound, cmd.InquiryID)
		}

		reply = domain.Reply{
			Message:   cmd.Message,
			CreatedAt: time.Now(),
		}
		inquiry.Replies = append(inquiry.Replies, reply)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &reply, nil
}
