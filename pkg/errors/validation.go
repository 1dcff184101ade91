package errors

import (
	"strings"
	"unicode"
)

// ValidatePackID validates a pack identifier used in store keys and API paths.
// It rejects identifiers that could be used for path traversal when a pack is
// persisted by the file-backed store.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidatePackID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidPath, "pack id cannot be empty")
	}

	const maxIDLength = 128
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidPath, "pack id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "pack id contains invalid control characters")
		}
	}

	// Path separators and traversal patterns would escape the store directory.
	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidPath, "pack id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateItemName validates an item name from a manifest or query.
// Names are display labels, so the rules are looser than for identifiers,
// but control characters and unreasonable lengths are still rejected.
func ValidateItemName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidManifest, "item name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidManifest, "item name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "item name contains invalid control characters")
		}
	}

	return nil
}
