package rest

import (
	"net/http"

	"github.com/opportunest/opportunest-server/internal/transport/rest/response"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.OK(w, http.StatusOK, map[string]string{"status": "ok"})
}
