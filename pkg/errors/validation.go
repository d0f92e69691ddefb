package errors

import (
	"strings"
	"unicode"
)

// ValidateDimensions validates grid dimensions.
// Grids must be at least 1x1; there is no upper limit beyond a sanity cap
// that keeps a malformed archive from allocating gigabytes.
func ValidateDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return New(ErrCodeInvalidInput, "grid dimensions must be at least 1x1, got %dx%d", width, height)
	}

	const maxCells = 1 << 26 // 64M cells, ~512MB of int64 payload
	if width*height > maxCells {
		return New(ErrCodeInvalidInput, "grid too large: %dx%d exceeds %d cells", width, height, maxCells)
	}

	return nil
}

// ValidateProbability validates a replacement weight.
// Weights are probabilities in [0,1]; the sum across a replacement list may
// be below 1 (the shortfall means "no replacement") but each entry must be
// a valid probability on its own.
func ValidateProbability(p float64) error {
	if p != p { // NaN
		return New(ErrCodeInvalidInput, "probability must not be NaN")
	}
	if p < 0 || p > 1 {
		return New(ErrCodeInvalidInput, "probability must be in [0,1], got %g", p)
	}
	return nil
}

// ValidateArchiveName validates a stored archive name for safety.
// It rejects names that could be used for path traversal when the file
// store maps names to paths.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateArchiveName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "archive name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "archive name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "archive name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "archive name cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "archive name cannot contain path traversal sequences (..)")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidInput, "archive name cannot be a hidden file")
	}

	return nil
}
