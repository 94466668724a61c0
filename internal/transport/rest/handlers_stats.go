package rest

import (
	"net/http"

	"github.com/opportunest/opportunest-server/internal/transport/rest/response"
)

// AdminStats computes the dashboard overview fresh on every call.
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	overview, err := h.stats.Overview(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, http.StatusOK, overview)
}
