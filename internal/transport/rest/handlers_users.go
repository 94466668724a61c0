package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opportunest/opportunest-server/internal/pkg/logger"
	"github.com/opportunest/opportunest-server/internal/service"
	"github.com/opportunest/opportunest-server/internal/transport/rest/response"
)

// SyncUser upserts the caller's account from their verified token. The role
// in the response is whatever is persisted, never token-derived.
func (h *Handler) SyncUser(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIdentity(r.Context())
	if !ok {
		response.Fail(w, http.StatusUnauthorized, "unauthorized access", nil)
		return
	}

	u, err := h.users.Sync(r.Context(), service.SyncIdentity{
		Email:   id.Email,
		Name:    id.Name,
		Picture: id.Picture,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error().Err(err).Msg("sync user failed")
		response.Err(w, err)
		return
	}
	response.OK(w, http.StatusOK, u)
}

func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, http.StatusOK, users)
}

func (h *Handler) AdminChangeRole(w http.ResponseWriter, r *http.Request) {
	id, _ := GetIdentity(r.Context())

	var req struct {
		Role string `json:"role" validate:"required"`
	}
	if !decodeValid(w, r.Body, &req) {
		return
	}

	if err := h.users.ChangeRole(r.Context(), chi.URLParam(r, "id"), req.Role, id.Email); err != nil {
		response.Err(w, err)
		return
	}
	response.OKMessage(w, http.StatusOK, "role updated")
}

func (h *Handler) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, _ := GetIdentity(r.Context())

	if err := h.users.Remove(r.Context(), chi.URLParam(r, "id"), id.Email); err != nil {
		response.Err(w, err)
		return
	}
	response.OKMessage(w, http.StatusOK, "user deleted")
}
