package paths

import (
	"strings"

	"github.com/arthur-debert/wsp/pkg/errors"
)

// ValidateFileName ensures a managed file name is a single path element.
// Names must:
// - Not be empty
// - Not contain path separators
// - Not be . or ..
// - Not contain null bytes
func ValidateFileName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "file name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "file name %q cannot contain path separators", name)
	}

	if name == "." || name == ".." {
		return errors.Newf(errors.ErrInvalidInput, "file name cannot be %q", name)
	}

	if strings.Contains(name, "\x00") {
		return errors.New(errors.ErrInvalidInput, "file name contains null bytes")
	}

	return nil
}

// ValidatePath checks a configured directory path.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}
