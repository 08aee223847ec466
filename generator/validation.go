package generator

import (
	"fmt"

	"github.com/ridoystarlord/tsmodel/schema"
)

// Category selects the validator applied to a field.
type Category string

const (
	CategoryInteger Category = "integer"
	CategoryDecimal Category = "decimal"
	CategoryBoolean Category = "boolean"
	CategoryDate    Category = "date"
	CategoryString  Category = "string"
	CategoryEnum    Category = "enum"
)

// TransformKind selects how raw input is converted before validation.
// Every transform maps null, undefined and the empty string to null.
type TransformKind string

const (
	TransformNone    TransformKind = ""
	TransformInteger TransformKind = "integer"
	TransformDecimal TransformKind = "decimal"
	TransformBoolean TransformKind = "boolean"
	TransformDate    TransformKind = "date"
)

// Rule is a validation descriptor for one field, independent of the syntax it
// is rendered with.
type Rule struct {
	Category  Category
	Message   string
	Transform TransformKind
	// Enum is the enum type name for CategoryEnum.
	Enum string
}

// RulesFor returns the validation rules of a non-relation column.
func RulesFor(c *schema.Column) ([]Rule, error) {
	switch t := c.Type.(type) {
	case schema.Common:
		switch t.Name {
		case schema.Int, schema.Bigint, schema.Tinyint, schema.Smallint:
			return []Rule{numberRule(c.Name, CategoryInteger)}, nil
		case schema.Float, schema.Real, schema.Decimal:
			return []Rule{numberRule(c.Name, CategoryDecimal)}, nil
		case schema.Boolean:
			return []Rule{{
				Category:  CategoryBoolean,
				Message:   c.Name + " must be a boolean",
				Transform: TransformBoolean,
			}}, nil
		case schema.Timestamp, schema.Date:
			return []Rule{{
				Category:  CategoryDate,
				Message:   c.Name + " must be an ISO8601 date",
				Transform: TransformDate,
			}}, nil
		case schema.Text, schema.Varchar:
			return []Rule{stringRule(c.Name)}, nil
		}
	case schema.DecimalType:
		return []Rule{numberRule(c.Name, CategoryDecimal)}, nil
	case schema.Chars:
		return []Rule{stringRule(c.Name)}, nil
	case schema.EnumRef:
		return []Rule{{
			Category: CategoryEnum,
			Message:  fmt.Sprintf("%s must be enum %s", c.Name, t.EnumName),
			Enum:     t.EnumName,
		}}, nil
	case schema.Relation:
		return nil, nil
	}
	return nil, &UnknownTypeError{Column: c.Name, Type: c.Type}
}

func numberRule(column string, cat Category) Rule {
	transform := TransformInteger
	if cat == CategoryDecimal {
		transform = TransformDecimal
	}
	return Rule{
		Category:  cat,
		Message:   fmt.Sprintf("%s must be a number (%s)", column, cat),
		Transform: transform,
	}
}

func stringRule(column string) Rule {
	return Rule{
		Category: CategoryString,
		Message:  column + " must be a string",
	}
}

const emptyInput = `(param?.value === null || param?.value === undefined || param?.value === '')`

var transformExpr = map[TransformKind]string{
	TransformInteger: `(param?: any): number | null => ` + emptyInput + ` ? null : parseInt(param.value)`,
	TransformDecimal: `(param?: any): number | null => ` + emptyInput + ` ? null : parseFloat(param.value)`,
	TransformBoolean: `(param?: any): boolean | null => ` + emptyInput + ` ? null : (param?.value === 'true' || ((typeof param?.value === 'boolean') && param?.value))`,
	TransformDate:    `(param?: any): Date | null => ` + emptyInput + ` ? null : new Date(param?.value)`,
}

// Decorators renders a rule as class-transformer / class-validator decorators.
func (r Rule) Decorators() []string {
	var lines []string
	if expr, ok := transformExpr[r.Transform]; ok {
		lines = append(lines, fmt.Sprintf("@Transform(%s)", expr))
	}
	msg := quote(r.Message)
	switch r.Category {
	case CategoryInteger, CategoryDecimal:
		lines = append(lines, fmt.Sprintf("@IsNumber({}, { message: %s })", msg))
	case CategoryBoolean:
		lines = append(lines, fmt.Sprintf("@IsBoolean({ message: %s })", msg))
	case CategoryDate:
		lines = append(lines, fmt.Sprintf("@IsISO8601({}, { message: %s })", msg))
	case CategoryString:
		lines = append(lines, fmt.Sprintf("@IsString({ message: %s })", msg))
	case CategoryEnum:
		lines = append(lines, fmt.Sprintf("@IsEnum(%s, { message: %s })", r.Enum, msg))
	}
	return lines
}
