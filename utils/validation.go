package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the shared validator over any payload struct. Every
// handler validates its payload here before touching the database.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationError is the per-field detail attached to a 400 response.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// GetValidationErrors converts validator errors into response details.
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
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}

// OfferWithinRange checks an offer amount against the price range submitted
// with it. Bounds are inclusive. The range is the client's denormalized copy
// of the property's range, not a re-fetch of the live document.
func OfferWithinRange(amount, priceMin, priceMax float64) bool {
	return amount >= priceMin && amount <= priceMax
}
