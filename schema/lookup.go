package schema

// FindEnum returns the enum named name, or nil.
func FindEnum(items []Item, name string) *Enum {
	for _, it := range items {
		if e, ok := it.(*Enum); ok && e.Name == name {
			return e
		}
	}
	return nil
}

// FindTable returns the table named name, or nil.
func FindTable(items []Item, name string) *Table {
	for _, it := range items {
		if t, ok := it.(*Table); ok && t.Name == name {
			return t
		}
	}
	return nil
}

// Tables returns the tables in items, in input order.
func Tables(items []Item) []*Table {
	var out []*Table
	for _, it := range items {
		if t, ok := it.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// Enums returns the enums in items, in input order.
func Enums(items []Item) []*Enum {
	var out []*Enum
	for _, it := range items {
		if e, ok := it.(*Enum); ok {
			out = append(out, e)
		}
	}
	return out
}
