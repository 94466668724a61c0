package rest

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/opportunest/opportunest-server/internal/transport/rest/response"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeValid decodes the JSON body into v and runs its validate tags.
// On failure it writes the 400 response itself and reports false.
func decodeValid(w http.ResponseWriter, body io.Reader, v any) bool {
	if err := render.DecodeJSON(body, v); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	if err := validate.Struct(v); err != nil {
		meta := map[string]string{}
		var verrs validator.ValidationErrors
		if ok := asValidationErrors(err, &verrs); ok {
			for _, fe := range verrs {
				meta[fieldName(fe)] = "failed on '" + fe.Tag() + "'"
			}
		}
		response.Fail(w, http.StatusBadRequest, "invalid request body", meta)
		return false
	}
	return true
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

func fieldName(fe validator.FieldError) string {
	// use the struct field with a lowered first letter so meta keys match the
	// JSON shape clients send
	f := fe.Field()
	if f == "" {
		return f
	}
	return strings.ToLower(f[:1]) + f[1:]
}
