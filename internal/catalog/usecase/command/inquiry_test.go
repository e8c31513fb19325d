package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tair/shop-admin/internal/catalog/domain"
)

func addInquiryCmd(productID uint, message string) AddInquiryCommand {
	return AddInquiryCommand{
		ProductID: productID,
		UserID:    7,
		UserName:  "curious",
		Message:   message,
	}
}

func TestAddInquiry_KeepsCountConsistent(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)
	handler := NewAddInquiryHandler(repo)

	_, err := handler.Handle(addInquiryCmd(p.ID, "does it ship flat?"))
	require.NoError(t, err)
	_, err = handler.Handle(addInquiryCmd(p.ID, "is there a warranty?"))
	require.NoError(t, err)

	stored, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stored.NumInquiries)
	require.Len(t, stored.Inquiries, 2)
}

func TestAddInquiry_MissingProduct(t *testing.T) {
	repo := newFakeProductRepo()

	_, err := NewAddInquiryHandler(repo).Handle(addInquiryCmd(123, "hello?"))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteInquiry_RecomputesCount(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)

	inquiry, err := NewAddInquiryHandler(repo).Handle(addInquiryCmd(p.ID, "first"))
	require.NoError(t, err)
	_, err = NewAddInquiryHandler(repo).Handle(addInquiryCmd(p.ID, "second"))
	require.NoError(t, err)

	updated, err := NewDeleteInquiryHandler(repo).Handle(DeleteInquiryCommand{ProductID: p.ID, InquiryID: inquiry.ID})
	require.NoError(t, err)
	require.Equal(t, 1, updated.NumInquiries)
	require.Len(t, updated.Inquiries, 1)
}

// Removal has set semantics: a missing inquiry id is a no-op, not an error.
func TestDeleteInquiry_MissingInquiryIsNoOp(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)

	_, err := NewAddInquiryHandler(repo).Handle(addInquiryCmd(p.ID, "keep me"))
	require.NoError(t, err)

	updated, err := NewDeleteInquiryHandler(repo).Handle(DeleteInquiryCommand{ProductID: p.ID, InquiryID: "ghost"})
	require.NoError(t, err)
	require.Equal(t, 1, updated.NumInquiries)
}

func TestDeleteInquiry_MissingProduct(t *testing.T) {
	repo := newFakeProductRepo()

	_, err := NewDeleteInquiryHandler(repo).Handle(DeleteInquiryCommand{ProductID: 123, InquiryID: "any"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddReply_PreservesInsertionOrder(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)

	inquiry, err := NewAddInquiryHandler(repo).Handle(addInquiryCmd(p.ID, "lead time?"))
	require.NoError(t, err)

	handler := NewAddReplyHandler(repo)
	for _, msg := range []string{"first", "second", "third"} {
		_, err := handler.Handle(AddReplyCommand{ProductID: p.ID, InquiryID: inquiry.ID, Message: msg})
		require.NoError(t, err)
	}

	stored, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	replies := stored.FindInquiry(inquiry.ID).Replies
	require.Len(t, replies, 3)
	require.Equal(t, "first", replies[0].Message)
	require.Equal(t, "second", replies[1].Message)
	require.Equal(t, "third", replies[2].Message)
}

func TestAddReply_StaysOnItsOwnThread(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)
	add := NewAddInquiryHandler(repo)

	first, err := add.Handle(addInquiryCmd(p.ID, "thread one"))
	require.NoError(t, err)
	second, err := add.Handle(addInquiryCmd(p.ID, "thread two"))
	require.NoError(t, err)

	_, err = NewAddReplyHandler(repo).Handle(AddReplyCommand{ProductID: p.ID, InquiryID: second.ID, Message: "only here"})
	require.NoError(t, err)

	stored, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	require.Empty(t, stored.FindInquiry(first.ID).Replies)
	require.Len(t, stored.FindInquiry(second.ID).Replies, 1)
}

func TestAddReply_RejectsBlankMessage(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)

	inquiry, err := NewAddInquiryHandler(repo).Handle(addInquiryCmd(p.ID, "anyone?"))
	require.NoError(t, err)

	for _, msg := range []string{"", "   ", "\t\n"} {
		_, err := NewAddReplyHandler(repo).Handle(AddReplyCommand{ProductID: p.ID, InquiryID: inquiry.ID, Message: msg})
		require.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestAddReply_MissingInquiry(t *testing.T) {
	repo := newFakeProductRepo()
	p := seedProduct(repo)

	_, err := NewAddReplyHandler(repo).Handle(AddReplyCommand{ProductID: p.ID, InquiryID: "missing", Message: "hi"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
