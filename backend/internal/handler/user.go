package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/confluence-bridge/shared/api"
	"github.com/itchan-dev/confluence-bridge/shared/domain/confluence"
	"github.com/itchan-dev/confluence-bridge/shared/utils"
)

// GetCurrentUser handles GET /v1/users/me
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.user.Current(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, api.NewUserResponse(user))
}

// GetUser handles GET /v1/users/{identifier}. The identifier is an account id on
// cloud and a username on server; ?by=key switches server lookups to user keys.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	lookup := confluence.UserLookup{Identifier: chi.URLParam(r, "identifier")}
	switch by := r.URL.Query().Get("by"); by {
	case "", "username", "account_id":
	case "key":
		lookup.ByKey = true
	default:
		http.Error(w, "invalid by: must be one of username, account_id, key", http.StatusBadRequest)
		return
	}

	user, err := h.user.Get(r.Context(), lookup)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, api.NewUserResponse(user))
}
