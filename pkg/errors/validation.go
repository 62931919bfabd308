package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateClassName validates a scene object class name.
// It rejects names that could not have come from a scene graph and
// names that could be used for injection when echoed into output paths.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Letters and digits only, starting with a letter
//   - Maximum length of 256 characters
func ValidateClassName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "class name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "class name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "class name contains invalid control characters")
		}
	}

	if !classNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid class name: %q", name)
	}

	return nil
}

// classNameRegex matches scene object class names such as "vtkPolyData".
var classNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// contentHashRegex matches content hashes: base64 digest (padding stripped),
// an underscore, the element count, and a single-letter type code.
var contentHashRegex = regexp.MustCompile(`^[A-Za-z0-9+/]+_[0-9]+[A-Za-z]$`)

// ValidateContentHash validates an array content hash before it is used
// as a cache key or echoed into a URL path.
func ValidateContentHash(hash string) error {
	if hash == "" {
		return New(ErrCodeInvalidHash, "content hash cannot be empty")
	}

	if len(hash) > 64 {
		return New(ErrCodeInvalidHash, "content hash too long (max 64 characters)")
	}

	if !contentHashRegex.MatchString(hash) {
		return New(ErrCodeInvalidHash, "invalid content hash: %q", hash)
	}

	return nil
}

// ValidatePath validates a file path for output and snapshot storage.
// It prevents path traversal attacks and ensures reasonable path length.
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

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateSnapshotKey validates a snapshot store key.
// Keys are simple identifiers, never paths.
func ValidateSnapshotKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "snapshot key cannot be empty")
	}

	if len(key) > 256 {
		return New(ErrCodeInvalidInput, "snapshot key too long (max 256 characters)")
	}

	if strings.ContainsAny(key, "/\\") {
		return New(ErrCodeInvalidInput, "snapshot key cannot contain path separators")
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "snapshot key contains invalid control characters")
		}
	}

	return nil
}
