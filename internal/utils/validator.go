// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("price", validatePrice)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validatePrice accepts decimal strings like "1199.00". Prices travel as
// strings end to end and are only parsed where totals are derived.
func validatePrice(fl validator.FieldLevel) bool {
	price := fl.Field().String()
	if price == "" {
		return false
	}

	dot := false
	for i, r := range price {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !dot && i > 0:
			dot = true
		default:
			return false
		}
	}
	return price[len(price)-1] != '.'
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "price":
		return e.Field() + " must be a decimal string like \"399.00\""
	default:
		return e.Field() + " is invalid"
	}
}
