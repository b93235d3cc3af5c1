package errors

import (
	"strings"
	"unicode"
)

// ValidateDirectory validates an output directory path from an attribute
// or configuration value.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters
//   - No null bytes
//   - Maximum length of 500 characters
//
// Both relative and absolute paths are accepted; the renderer creates the
// directory on demand.
func ValidateDirectory(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "directory cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "directory too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "directory contains invalid characters")
		}
	}

	return nil
}

// ValidateScriptPath validates a script file path referenced by a code
// block attribute. Existence is checked separately when the file is read.
func ValidateScriptPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "script path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "script path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "script path cannot be a directory")
	}

	return nil
}

// ValidateDPI validates a raster resolution value.
func ValidateDPI(dpi int) error {
	if dpi <= 0 {
		return New(ErrCodeInvalidAttribute, "dpi must be positive, got %d", dpi)
	}

	const maxDPI = 10000
	if dpi > maxDPI {
		return New(ErrCodeInvalidAttribute, "dpi too large (max %d), got %d", maxDPI, dpi)
	}

	return nil
}

// ValidateJobs validates a worker pool size.
func ValidateJobs(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidConfig, "jobs must be at least 1, got %d", n)
	}

	return nil
}
