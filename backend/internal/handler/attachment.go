package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/confluence-bridge/shared/api"
	"github.com/itchan-dev/confluence-bridge/shared/domain/confluence"
	"github.com/itchan-dev/confluence-bridge/shared/utils"
)

// ListAttachments handles GET /v1/content/{contentId}/attachments
func (h *Handler) ListAttachments(w http.ResponseWriter, r *http.Request) {
	start, err := parseIntParam(r, "start", 0)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	limit, err := parseIntParam(r, "limit", confluence.DefaultAttachmentLimit)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	query := confluence.AttachmentQuery{
		ContentID: chi.URLParam(r, "contentId"),
		Start:     start,
		Limit:     limit,
		Filename:  r.URL.Query().Get("filename"),
		MediaType: r.URL.Query().Get("media_type"),
	}
	page, err := h.attachment.List(r.Context(), query)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, api.NewAttachmentListResponse(page))
}

// GetAttachment handles GET /v1/attachments/{attachmentId}
func (h *Handler) GetAttachment(w http.ResponseWriter, r *http.Request) {
	attachment, err := h.attachment.Get(r.Context(), chi.URLParam(r, "attachmentId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, api.NewAttachmentResponse(attachment))
}
