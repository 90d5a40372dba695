package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps request DTO field names to user-facing labels.
// Fields not listed fall back to spaced CamelCase.
var fieldLabels = map[string]string{
	"Email":           "Email",
	"Password":        "Password",
	"Title":           "Job title",
	"Description":     "Description",
	"JobID":           "Job",
	"CandidateIDs":    "Candidates",
	"SelectionStatus": "Selection status",
	"Stage":           "Pipeline stage",
	"Text":            "Note text",
	"EmailType":       "Email type",
	"Questions":       "Questions",
	"DurationMinutes": "Duration",
	"FocusArea":       "Focus area",
	"ProfileID":       "Profile",
	"Answer":          "Answer",
	"Name":            "Name",
}

// FormatBindingError converts a gin binding error into a single
// user-friendly message. Non-validator errors (malformed JSON, wrong
// types) pass through unchanged.
func FormatBindingError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return strings.Join(messages, "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := fieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Split(e.Param(), " "), ", "))
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

func fieldLabel(fieldName string) string {
	if label, ok := fieldLabels[fieldName]; ok {
		return label
	}
	return spaceCamelCase(fieldName)
}

func spaceCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
