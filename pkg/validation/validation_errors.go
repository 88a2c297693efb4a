package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Name":     "Name",
	"Email":    "Email",
	"Password": "Password",
	"Title":    "Title",
	"Template": "Template",
	"Company":  "Company",
	"Location": "Location",
	"Message":  "Message",
	"Role":     "Role",
	"Text":     "Text",
}

// FormatValidationErrors converts validator errors into one user-friendly
// message. Non-validation errors pass through unchanged.
func FormatValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return strings.Join(messages, "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := FieldLabels[e.Field()]
	if label == "" {
		label = e.Field()
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Split(e.Param(), " "), ", "))
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
