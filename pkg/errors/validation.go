package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates a component identifier.
//
// IDs travel into cache keys, JSON output and rendered element attributes,
// so the rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidTree, "component id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidTree, "component id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTree, "component id contains invalid control characters")
		}
	}

	return nil
}

// ValidateDocumentPath validates a document file path for safety.
// It prevents path traversal and rejects unreasonable lengths.
func ValidateDocumentPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "document path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "document path too long (max 500 characters)")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "document path contains invalid control characters")
		}
	}

	if strings.Contains(path, "\x00") {
		return New(ErrCodeInvalidPath, "document path contains null byte")
	}

	return nil
}
