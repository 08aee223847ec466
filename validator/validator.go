package validator

import (
	"errors"
	"fmt"

	"github.com/ridoystarlord/tsmodel/generator"
	"github.com/ridoystarlord/tsmodel/schema"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Type     string `json:"type"`
	Table    string `json:"table,omitempty"`
	Enum     string `json:"enum,omitempty"`
	Column   string `json:"column,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // "error", "warning"
}

// ValidationResult contains all validation results
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
}

// Err joins every error-level finding, or returns nil.
func (r *ValidationResult) Err() error {
	var errs []error
	for _, e := range r.Errors {
		errs = append(errs, errors.New(e.Message))
	}
	return errors.Join(errs...)
}

// Validate checks items without generating anything. Unlike compilation,
// which stops at the first failure, it reports every dangling reference and
// duplicate name. Names that are not usable as TypeScript identifiers are
// reported as warnings.
func Validate(items []schema.Item) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	names := map[schema.ItemKind]map[string]bool{
		schema.KindTable: {},
		schema.KindEnum:  {},
	}
	for _, it := range items {
		if names[it.Kind()][it.ItemName()] {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "duplicate_name",
				Message:  fmt.Sprintf("Duplicate %s name '%s'", it.Kind(), it.ItemName()),
				Severity: "error",
			})
		}
		names[it.Kind()][it.ItemName()] = true

		switch it := it.(type) {
		case *schema.Table:
			validateTable(items, it, result)
		case *schema.Enum:
			validateEnum(it, result)
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func validateTable(items []schema.Item, t *schema.Table, result *ValidationResult) {
	if err := validateIdentifier(t.Name); err != nil {
		result.Warnings = append(result.Warnings, ValidationError{
			Type:     "table_name",
			Table:    t.Name,
			Message:  fmt.Sprintf("Table %v", err),
			Severity: "warning",
		})
	}

	if len(t.Columns) == 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Type:     "no_columns",
			Table:    t.Name,
			Message:  fmt.Sprintf("Table '%s' has no columns", t.Name),
			Severity: "warning",
		})
		return
	}

	columnNames := make(map[string]bool)
	for i := range t.Columns {
		column := &t.Columns[i]

		// Check for duplicate column names
		if columnNames[column.Name] {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "duplicate_column",
				Table:    t.Name,
				Column:   column.Name,
				Message:  fmt.Sprintf("Duplicate column name '%s' in table '%s'", column.Name, t.Name),
				Severity: "error",
			})
			continue
		}
		columnNames[column.Name] = true

		if err := validateCharacters(column.Name); err != nil {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:     "column_name",
				Table:    t.Name,
				Column:   column.Name,
				Message:  fmt.Sprintf("Column %v", err),
				Severity: "warning",
			})
		}

		if _, err := generator.EmitColumn(items, t, column, true); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Type:     referenceType(err),
				Table:    t.Name,
				Column:   column.Name,
				Message:  err.Error(),
				Severity: "error",
			})
		}
	}
}

func validateEnum(e *schema.Enum, result *ValidationResult) {
	if err := validateIdentifier(e.Name); err != nil {
		result.Warnings = append(result.Warnings, ValidationError{
			Type:     "enum_name",
			Enum:     e.Name,
			Message:  fmt.Sprintf("Enum %v", err),
			Severity: "warning",
		})
	}

	if len(e.Members) == 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Type:     "no_members",
			Enum:     e.Name,
			Message:  fmt.Sprintf("Enum '%s' has no members", e.Name),
			Severity: "warning",
		})
	}

	seen := make(map[string]bool)
	for _, m := range e.Members {
		if seen[m] {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "duplicate_member",
				Enum:     e.Name,
				Message:  fmt.Sprintf("Duplicate member '%s' in enum '%s'", m, e.Name),
				Severity: "error",
			})
		}
		seen[m] = true
	}
}

func referenceType(err error) string {
	switch {
	case generator.IsResolutionError(err):
		return "unresolved_reference"
	case generator.IsReferenceError(err):
		return "foreign_key"
	case generator.IsUnknownTypeError(err):
		return "data_type"
	default:
		return "column"
	}
}

// validateIdentifier checks that name can be declared as a TypeScript type.
func validateIdentifier(name string) error {
	if err := validateCharacters(name); err != nil {
		return err
	}

	if reservedWords[name] {
		return fmt.Errorf("name '%s' is a reserved word", name)
	}

	return nil
}

// validateCharacters checks that name can be emitted without quoting.
// Property names may be reserved words.
func validateCharacters(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	for i, char := range name {
		letter := (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || char == '_' || char == '$'
		digit := char >= '0' && char <= '9'
		if !letter && !(digit && i > 0) {
			return fmt.Errorf("name '%s' contains invalid character '%c'", name, char)
		}
	}

	return nil
}

var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true, "continue": true,
	"debugger": true, "default": true, "delete": true, "do": true, "else": true, "enum": true,
	"export": true, "extends": true, "false": true, "finally": true, "for": true, "function": true,
	"if": true, "import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true, "with": true,
	"interface": true, "let": true, "package": true, "private": true, "protected": true,
	"public": true, "static": true, "yield": true,
}
