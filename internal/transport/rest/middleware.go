package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/opportunest/opportunest-server/internal/domain"
	"github.com/opportunest/opportunest-server/internal/security"
	"github.com/opportunest/opportunest-server/internal/transport/rest/response"
)

// RoleReader resolves the persisted role for an email. It is re-queried on
// every gated request so role changes apply to in-flight sessions.
type RoleReader interface {
	RoleOf(ctx context.Context, email string) (domain.Role, error)
}

// AuthMiddleware verifies the bearer token and stores the identity in context.
// A missing or malformed header is 401; a token that fails verification is 403.
func AuthMiddleware(verifier security.TokenVerifier) func(next http.Handler) http.Handler {
	if verifier == nil {
		panic("AuthMiddleware: nil verifier")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := strings.TrimSpace(r.Header.Get("Authorization"))
			if h == "" {
				response.Fail(w, http.StatusUnauthorized, "unauthorized access", nil)
				return
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				response.Fail(w, http.StatusUnauthorized, "unauthorized access", nil)
				return
			}

			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				response.Fail(w, http.StatusUnauthorized, "unauthorized access", nil)
				return
			}

			id, err := verifier.VerifyIDToken(raw)
			if err != nil {
				response.Fail(w, http.StatusForbidden, "forbidden access", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
		})
	}
}

// RequireModerator admits moderators and admins.
func RequireModerator(roles RoleReader) func(next http.Handler) http.Handler {
	return requireRole(roles, func(role domain.Role) bool { return role.AtLeastModerator() })
}

// RequireAdmin admits admins only.
func RequireAdmin(roles RoleReader) func(next http.Handler) http.Handler {
	return requireRole(roles, func(role domain.Role) bool { return role == domain.RoleAdmin })
}

func requireRole(roles RoleReader, allowed func(domain.Role) bool) func(next http.Handler) http.Handler {
	if roles == nil {
		panic("requireRole: nil role reader")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := GetIdentity(r.Context())
			if !ok {
				response.Fail(w, http.StatusUnauthorized, "unauthorized access", nil)
				return
			}

			role, err := roles.RoleOf(r.Context(), id.Email)
			if err != nil {
				// unknown user: the account was never synced or was deleted
				response.Fail(w, http.StatusForbidden, "forbidden access", nil)
				return
			}
			if !allowed(role) {
				response.Fail(w, http.StatusForbidden, "forbidden access", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
