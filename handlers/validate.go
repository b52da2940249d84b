package handlers

import (
	"errors"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError names one failing input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondValidation reports a 400 enumerating every failing field.
func respondValidation(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": errs})
}

// fieldErrors converts validator failures from gin's binding into the
// per-field error list of the API contract. Non-validator errors
// (malformed JSON and the like) yield nil.
func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: jsonName(fe.Field()), Message: reason(fe)})
	}
	return out
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

func jsonName(field string) string {
	if field == "" {
		return field
	}
	r := []rune(field)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
