package validation

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validateToken rejects catalog ids that a page could not send back
// unchanged as a data-id or <select> value: empty or containing whitespace.
func validateToken(fl validator.FieldLevel) bool {
	id, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	if id == "" {
		return false
	}

	return strings.IndexFunc(id, unicode.IsSpace) < 0
}
