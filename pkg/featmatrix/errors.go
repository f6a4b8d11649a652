package featmatrix

import (
	"fmt"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/parser"
)

// Configuration error sentinels, usable with errors.Is.
var (
	ErrRoleCollision = models.ErrRoleCollision
	ErrUnknownColumn = models.ErrUnknownColumn
	ErrNoFeatures    = models.ErrNoFeatures
	ErrUnknownEntity = models.ErrUnknownEntity
)

// Load error sentinels, usable with errors.Is.
var (
	ErrUnsupportedFormat = parser.ErrUnsupportedFormat
	ErrSheetNotFound     = parser.ErrSheetNotFound
	ErrEmptySheet        = parser.ErrEmptySheet
)

// ConfigError represents a role mapping or feature selection problem.
type ConfigError = models.ConfigError

// LoadError represents a failure to read the input table.
type LoadError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *LoadError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("load error in %q (sheet %q): %v", e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("load error in %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, sheet string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Sheet: sheet,
		Err:   err,
	}
}
