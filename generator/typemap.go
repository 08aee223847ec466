package generator

import "github.com/ridoystarlord/tsmodel/schema"

// TypeScript scalar type names.
const (
	ScalarString  = "string"
	ScalarNumber  = "number"
	ScalarBoolean = "boolean"
	ScalarDate    = "Date"
)

// MapType returns the TypeScript type of a column type. Enum references map to
// the enum name; relations map to the type of the foreign column, following
// chains of relations until a non-relation column is reached.
func MapType(t schema.Type, items []schema.Item) (string, error) {
	return mapType(items, "", "", t, nil)
}

func mapColumnType(items []schema.Item, table string, c *schema.Column) (string, error) {
	return mapType(items, table, c.Name, c.Type, nil)
}

func mapType(items []schema.Item, table, column string, t schema.Type, seen map[string]bool) (string, error) {
	switch t := t.(type) {
	case schema.Common:
		return mapCommon(column, t)
	case schema.DecimalType:
		return ScalarNumber, nil
	case schema.Chars:
		return ScalarString, nil
	case schema.EnumRef:
		return t.EnumName, nil
	case schema.Relation:
		target, fk, err := ResolveRelation(items, table, column, t)
		if err != nil {
			return "", err
		}
		key := target.Name + "." + fk.Name
		if seen[key] {
			return "", NewReferenceError(table, column, t.TableName, t.ForeignKey, "relation cycle")
		}
		if seen == nil {
			seen = make(map[string]bool)
		}
		seen[key] = true
		return mapType(items, target.Name, fk.Name, fk.Type, seen)
	default:
		return "", &UnknownTypeError{Column: column, Type: t}
	}
}

func mapCommon(column string, t schema.Common) (string, error) {
	switch t.Name {
	case schema.Text, schema.Varchar:
		return ScalarString, nil
	case schema.Int, schema.Float, schema.Bigint, schema.Tinyint, schema.Smallint, schema.Real, schema.Decimal:
		return ScalarNumber, nil
	case schema.Boolean:
		return ScalarBoolean, nil
	case schema.Timestamp, schema.Date:
		return ScalarDate, nil
	default:
		return "", &UnknownTypeError{Column: column, Type: t}
	}
}
