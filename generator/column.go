package generator

import (
	"fmt"

	"github.com/ridoystarlord/tsmodel/schema"
)

// RelationFieldPrefix prefixes the eager-reference field emitted for a relation column.
const RelationFieldPrefix = "otm_"

// EmitColumn renders one column of table as field declaration lines. With
// annotate set, each scalar field is preceded by its validation decorators.
func EmitColumn(items []schema.Item, table *schema.Table, col *schema.Column, annotate bool) ([]string, error) {
	marker := fieldMarker(col.Required(), annotate)

	if rel, ok := col.Type.(schema.Relation); ok {
		target, _, err := ResolveRelation(items, table.Name, col.Name, rel)
		if err != nil {
			return nil, err
		}
		scalar, err := mapColumnType(items, table.Name, col)
		if err != nil {
			return nil, err
		}
		return []string{
			field(RelationFieldPrefix+col.Name, marker, target.Name),
			field(col.Name, marker, scalar),
		}, nil
	}

	if ref, ok := col.Type.(schema.EnumRef); ok {
		if _, err := ResolveEnum(items, table.Name, col.Name, ref); err != nil {
			return nil, err
		}
	}
	typ, err := mapColumnType(items, table.Name, col)
	if err != nil {
		return nil, err
	}

	var lines []string
	if annotate {
		rules, err := RulesFor(col)
		if err != nil {
			return nil, err
		}
		for _, r := range rules {
			lines = append(lines, r.Decorators()...)
		}
	}
	return append(lines, field(col.Name, marker, typ)), nil
}

// fieldMarker returns the punctuation between a field name and its colon.
// Interfaces mark required fields with nothing; decorated classes need the
// definite assignment marker.
func fieldMarker(required, annotate bool) string {
	switch {
	case !required:
		return "?"
	case annotate:
		return "!"
	default:
		return ""
	}
}

func field(name, marker, typ string) string {
	return fmt.Sprintf("%s%s: %s;", name, marker, typ)
}
