package errors

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// elementIDRegex matches stable element identifiers such as "bed_01".
var elementIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Limits shared with the upstream schema.
const (
	MaxElementIDLength = 64
	MaxLabelLength     = 100
)

// ValidateElementID validates an element identifier.
//
// Identifiers are lowercase, start with a letter, contain only letters,
// digits and underscores, and are at most 64 characters long.
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidElementID, "element id cannot be empty")
	}

	if len(id) > MaxElementIDLength {
		return New(ErrCodeInvalidElementID, "element id too long (max %d characters): %q", MaxElementIDLength, id)
	}

	if !elementIDRegex.MatchString(id) {
		return New(ErrCodeInvalidElementID, "invalid element id %q (use lowercase letters, digits and underscores)", id)
	}

	return nil
}

// ValidateLabel validates a human-readable element label.
func ValidateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return New(ErrCodeInvalidPlan, "element label cannot be empty")
	}

	if utf8.RuneCountInString(label) > MaxLabelLength {
		return New(ErrCodeInvalidPlan, "element label too long (max %d characters)", MaxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPlan, "element label contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates a relative file path used for run output.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
