package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRoleCollision indicates two roles were mapped to the same column.
var ErrRoleCollision = errors.New("role columns must be distinct")

// ErrUnknownColumn indicates a role or feature names a column the table does not have.
var ErrUnknownColumn = errors.New("unknown column")

// ErrNoFeatures indicates no feature columns remain after excluding role and non-feature columns.
var ErrNoFeatures = errors.New("no feature columns selected")

// ErrUnknownEntity indicates a compared entity is not present in the result.
var ErrUnknownEntity = errors.New("unknown entity")

// ConfigError represents a mapping problem detected before aggregation.
type ConfigError struct {
	// Roles names the roles involved (e.g. "group", "entity").
	Roles []string
	// Columns names the offending columns.
	Columns []string
	Err     error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("mapping error")
	if len(e.Roles) > 0 {
		fmt.Fprintf(&b, " (roles %s)", strings.Join(e.Roles, ", "))
	}
	if len(e.Columns) > 0 {
		fmt.Fprintf(&b, " on columns %q", e.Columns)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(err error, roles []string, columns ...string) *ConfigError {
	return &ConfigError{
		Roles:   roles,
		Columns: columns,
		Err:     err,
	}
}
