package application

import (
	"fmt"
	"strings"

	"jarscope/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		// Format field name with spaces for error message (e.g., "memberPath" -> "member path")
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "memberPath" -> "member path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"path":        "file path",
		"fileName":    "file name",
		"memberPath":  "member path",
		"displayName": "display name",
		"resultID":    "result ID",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateInputName checks the suffix of a user supplied file name and
// returns its kind. No file content is touched.
func ValidateInputName(name string) (InputKind, error) {
	if err := ValidateRequired("fileName", name); err != nil {
		return InputUnknown, err
	}
	kind, err := domain.DetectInputKind(name)
	if err != nil {
		return InputUnknown, &UnsupportedExtensionError{Name: name}
	}
	return kind, nil
}
