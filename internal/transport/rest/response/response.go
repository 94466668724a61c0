package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/opportunest/opportunest-server/internal/domain"
)

// Envelope is the wire shape for every endpoint:
// {"success":true,"data":...,"total":n} or {"success":false,"message":"..."}.
type Envelope struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Meta    map[string]string `json:"meta,omitempty"`
	Total   *int64            `json:"total,omitempty"`
}

// JSON writes raw JSON with Content-Type.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK wraps a payload in the success envelope.
func OK(w http.ResponseWriter, status int, payload any) {
	JSON(w, status, Envelope{Success: true, Data: payload})
}

// OKTotal is OK plus a total count for paginated lists.
func OKTotal(w http.ResponseWriter, status int, payload any, total int64) {
	JSON(w, status, Envelope{Success: true, Data: payload, Total: &total})
}

// OKMessage reports a successful mutation with no payload.
func OKMessage(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: true, Message: message})
}

// Fail writes {"success":false,"message":...} with the given status.
func Fail(w http.ResponseWriter, status int, message string, meta map[string]string) {
	JSON(w, status, Envelope{Success: false, Message: message, Meta: meta})
}

// StatusOf maps the domain error taxonomy onto HTTP status codes. Anything
// outside the taxonomy is an internal error.
func StatusOf(err error) int {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case domain.CodeValidation, domain.CodeSelfAction:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeForbidden:
		return http.StatusForbidden
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Err renders a domain error through StatusOf. Internal errors never leak
// their message to the client.
func Err(w http.ResponseWriter, err error) {
	status := StatusOf(err)
	var appErr *domain.AppError
	if errors.As(err, &appErr) && status != http.StatusInternalServerError {
		Fail(w, status, appErr.Message, appErr.Meta)
		return
	}
	Fail(w, status, "internal error", nil)
}
