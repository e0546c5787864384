// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"

	"accreditation-api/models"
)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// IsValidCategory reports whether value is one of the recognized
// accreditation categories.
func IsValidCategory(value string) bool {
	for _, cat := range models.Categories {
		if cat.Value == value {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether value is a recognized document status.
func IsValidStatus(value string) bool {
	switch value {
	case models.StatusPending, models.StatusReviewing, models.StatusApproved:
		return true
	}
	return false
}

// FileTypeFromName derives the display file type from a filename:
// the uppercased suffix after the last dot, or empty when the name
// has no extension.
func FileTypeFromName(fileName string) string {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 || idx == len(fileName)-1 {
		return ""
	}
	return strings.ToUpper(fileName[idx+1:])
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
