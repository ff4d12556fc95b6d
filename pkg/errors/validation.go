package errors

import (
	"strings"
	"unicode"
)

// maxChartNameLength bounds stored chart names.
const maxChartNameLength = 128

// ValidateChartName validates the name of a stored chart.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators (names double as download file names)
//   - Maximum length of 128 characters
func ValidateChartName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "chart name cannot be empty")
	}

	if len(name) > maxChartNameLength {
		return New(ErrCodeInvalidInput, "chart name too long (max %d characters)", maxChartNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "chart name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "chart name cannot contain path separators")
	}

	return nil
}

// ValidateFormat checks that an output format is one of the supported sinks.
func ValidateFormat(format string, valid []string) error {
	for _, v := range valid {
		if format == v {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(valid, ", "))
}
