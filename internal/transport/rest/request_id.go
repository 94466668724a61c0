package rest

import (
	"net/http"

	"github.com/google/uuid"

	appCtx "github.com/opportunest/opportunest-server/internal/pkg/context"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags each request with an id, honouring one supplied by the
// caller, and echoes it back so the browser client can correlate failures.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, rid)

		ctx := appCtx.WithRequestID(r.Context(), rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
