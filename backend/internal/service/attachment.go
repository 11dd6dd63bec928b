package service

import (
	"context"
	"strings"

	"github.com/itchan-dev/confluence-bridge/shared/domain/confluence"
	"github.com/itchan-dev/confluence-bridge/shared/utils"
)

type AttachmentService interface {
	List(ctx context.Context, q confluence.AttachmentQuery) (confluence.AttachmentPage, error)
	Get(ctx context.Context, attachmentID string) (confluence.Attachment, error)
}

type AttachmentClient interface {
	GetAttachments(ctx context.Context, q confluence.AttachmentQuery) (confluence.AttachmentPage, error)
	GetAttachment(ctx context.Context, attachmentID string) (confluence.Attachment, error)
}

type Attachment struct {
	client AttachmentClient
}

func NewAttachment(client AttachmentClient) AttachmentService {
	return &Attachment{client}
}

// List validates the query as given. Callers fill in DefaultAttachmentLimit
// when the client did not ask for a page size, so an explicit 0 is rejected.
func (a *Attachment) List(ctx context.Context, q confluence.AttachmentQuery) (confluence.AttachmentPage, error) {
	q.ContentID = strings.TrimSpace(q.ContentID)
	if err := utils.Validate(q); err != nil {
		return confluence.AttachmentPage{}, err
	}
	return a.client.GetAttachments(ctx, q)
}

func (a *Attachment) Get(ctx context.Context, attachmentID string) (confluence.Attachment, error) {
	lookup := struct {
		AttachmentID string `validate:"required"`
	}{strings.TrimSpace(attachmentID)}
	if err := utils.Validate(lookup); err != nil {
		return confluence.Attachment{}, err
	}
	return a.client.GetAttachment(ctx, lookup.AttachmentID)
}
