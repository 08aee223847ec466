package generator

import "github.com/ridoystarlord/tsmodel/schema"

// ResolveEnum looks up the enum referenced by table.column.
func ResolveEnum(items []schema.Item, table, column string, ref schema.EnumRef) (*schema.Enum, error) {
	e := schema.FindEnum(items, ref.EnumName)
	if e == nil {
		return nil, NewResolutionError(schema.KindEnum, table, column, ref.EnumName)
	}
	return e, nil
}

// ResolveRelation looks up the target table and foreign column of the relation
// declared on table.column.
func ResolveRelation(items []schema.Item, table, column string, ref schema.Relation) (*schema.Table, *schema.Column, error) {
	target := schema.FindTable(items, ref.TableName)
	if target == nil {
		return nil, nil, NewResolutionError(schema.KindTable, table, column, ref.TableName)
	}
	fk := target.Column(ref.ForeignKey)
	if fk == nil {
		return nil, nil, NewReferenceError(table, column, ref.TableName, ref.ForeignKey, "")
	}
	return target, fk, nil
}
