package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ridoystarlord/tsmodel/schema"
)

// Sentinel errors for the failure classes of a compilation run.
var (
	// ErrUnresolved indicates a referenced enum or table does not exist.
	ErrUnresolved = errors.New("tsmodel: unresolved reference")
	// ErrBadReference indicates a relation whose foreign column cannot be used.
	ErrBadReference = errors.New("tsmodel: invalid reference")
	// ErrUnknownType indicates a column type variant the mapper does not know.
	ErrUnknownType = errors.New("tsmodel: unknown type")
	// ErrDuplicateName indicates two items of the same kind share a name.
	ErrDuplicateName = errors.New("tsmodel: duplicate name")
	// ErrInvalidConfig indicates a bad configuration value.
	ErrInvalidConfig = errors.New("tsmodel: invalid configuration")
)

// ResolutionError reports an enum or table reference that names no item.
type ResolutionError struct {
	Kind        schema.ItemKind
	Table       string
	Column      string
	MissingName string
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tsmodel: %s %q not found", e.Kind, e.MissingName)
	if e.Column != "" {
		b.WriteString(" (referenced by column ")
		if e.Table != "" {
			b.WriteString(e.Table)
			b.WriteString(".")
		}
		b.WriteString(e.Column)
		b.WriteString(")")
	}
	return b.String()
}

// Is reports whether the target matches ErrUnresolved.
func (e *ResolutionError) Is(target error) bool {
	return target == ErrUnresolved
}

// NewResolutionError creates a new ResolutionError.
func NewResolutionError(kind schema.ItemKind, table, column, missing string) *ResolutionError {
	return &ResolutionError{
		Kind:        kind,
		Table:       table,
		Column:      column,
		MissingName: missing,
	}
}

// ReferenceError reports a relation whose foreign key is not a column of the
// target table, or a chain of relations that never reaches a scalar column.
type ReferenceError struct {
	Table        string
	Column       string
	ForeignTable string
	ForeignKey   string
	Message      string
}

// Error implements the error interface.
func (e *ReferenceError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "foreign key column not found"
	}
	return fmt.Sprintf("tsmodel: relation %s.%s -> %s.%s: %s",
		e.Table, e.Column, e.ForeignTable, e.ForeignKey, msg)
}

// Is reports whether the target matches ErrBadReference.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrBadReference
}

// NewReferenceError creates a new ReferenceError.
func NewReferenceError(table, column, foreignTable, foreignKey, message string) *ReferenceError {
	return &ReferenceError{
		Table:        table,
		Column:       column,
		ForeignTable: foreignTable,
		ForeignKey:   foreignKey,
		Message:      message,
	}
}

// UnknownTypeError reports a type variant outside the known set. Given a schema
// produced by the loader this is unreachable.
type UnknownTypeError struct {
	Column string
	Type   schema.Type
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	if e.Type == nil {
		return fmt.Sprintf("tsmodel: column %q has no type", e.Column)
	}
	return fmt.Sprintf("tsmodel: column %q has unknown type %s (%s)", e.Column, e.Type, e.Type.Kind())
}

// Is reports whether the target matches ErrUnknownType.
func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// DuplicateNameError reports two items of the same kind with the same name.
type DuplicateNameError struct {
	Kind schema.ItemKind
	Name string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("tsmodel: duplicate %s name %q", e.Kind, e.Name)
}

// Is reports whether the target matches ErrDuplicateName.
func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("tsmodel: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("tsmodel: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// IsResolutionError reports whether the error is a ResolutionError.
func IsResolutionError(err error) bool {
	var resErr *ResolutionError
	return errors.As(err, &resErr)
}

// IsReferenceError reports whether the error is a ReferenceError.
func IsReferenceError(err error) bool {
	var refErr *ReferenceError
	return errors.As(err, &refErr)
}

// IsUnknownTypeError reports whether the error is an UnknownTypeError.
func IsUnknownTypeError(err error) bool {
	var typeErr *UnknownTypeError
	return errors.As(err, &typeErr)
}
