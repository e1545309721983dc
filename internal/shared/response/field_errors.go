package response

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors converts a gin binding error into per-field messages keyed by
// "errors.<field>.<rule>", the format API consumers translate client-side.
// Errors that are not validation errors collapse into a generic request key.
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["request"] = "errors.request.invalid"
		return fields
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		rule := fe.Tag()
		// required_without and friends read as plain required violations
		if strings.HasPrefix(rule, "required") {
			rule = "required"
		}
		fields[field] = "errors." + field + "." + rule
	}
	return fields
}
