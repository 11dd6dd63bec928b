package api

import "github.com/itchan-dev/confluence-bridge/shared/domain/confluence"

// Response DTOs. Records are sent in their simplified form.

type UserResponse struct {
	User map[string]any `json:"user"`
}

type AttachmentResponse struct {
	Attachment map[string]any `json:"attachment"`
}

type AttachmentListResponse struct {
	Attachments []map[string]any `json:"attachments"`
	Start       int              `json:"start"`
	Limit       int              `json:"limit"`
	Size        int              `json:"size"`
	HasMore     bool             `json:"has_more"`
}

func NewUserResponse(u confluence.User) UserResponse {
	return UserResponse{User: u.ToSimplifiedDict()}
}

func NewAttachmentResponse(a confluence.Attachment) AttachmentResponse {
	return AttachmentResponse{Attachment: a.ToSimplifiedDict()}
}

func NewAttachmentListResponse(page confluence.AttachmentPage) AttachmentListResponse {
	attachments := make([]map[string]any, len(page.Attachments))
	for i, a := range page.Attachments {
		attachments[i] = a.ToSimplifiedDict()
	}
	return AttachmentListResponse{
		Attachments: attachments,
		Start:       page.Start,
		Limit:       page.Limit,
		Size:        page.Size,
		HasMore:     page.HasMore,
	}
}
