package generator

import (
	"fmt"
	"strings"

	"github.com/ridoystarlord/tsmodel/schema"
)

const indent = "  "

// Header imports of decorated classes.
var annotationImports = []string{
	`import { Transform } from "class-transformer";`,
	`import { IsBoolean, IsEnum, IsISO8601, IsNumber, IsString } from "class-validator";`,
}

// EmitTable renders a table file: imports of the referenced items, then the
// declaration with one or more field lines per column.
func EmitTable(items []schema.Item, t *schema.Table, annotate bool) (File, error) {
	imports, err := tableImports(items, t)
	if err != nil {
		return File{}, err
	}

	lines := append(imports, "")
	if annotate {
		lines = append(lines, annotationImports...)
		lines = append(lines, "", "export class "+t.Name+" {")
	} else {
		lines = append(lines, "export interface "+t.Name+" {")
	}
	for i := range t.Columns {
		fields, err := EmitColumn(items, t, &t.Columns[i], annotate)
		if err != nil {
			return File{}, err
		}
		for _, f := range fields {
			lines = append(lines, indent+f)
		}
	}
	lines = append(lines, "}")

	return File{
		Name:    FileName(schema.KindTable, t.Name),
		Content: strings.Join(lines, "\n") + "\n",
	}, nil
}

// tableImports returns one import line per distinct enum or table referenced by
// the columns of t, in order of first reference. A table never imports itself.
func tableImports(items []schema.Item, t *schema.Table) ([]string, error) {
	var (
		lines []string
		seen  = make(map[string]bool)
	)
	add := func(it schema.Item) {
		key := string(it.Kind()) + "/" + it.ItemName()
		if seen[key] {
			return
		}
		seen[key] = true
		if it.Kind() == schema.KindTable && it.ItemName() == t.Name {
			return
		}
		lines = append(lines, fmt.Sprintf("import { %s } from %s;",
			it.ItemName(), quote(importSpecifier(schema.KindTable, it.Kind(), it.ItemName()))))
	}

	for _, c := range t.Columns {
		switch ref := c.Type.(type) {
		case schema.EnumRef:
			e, err := ResolveEnum(items, t.Name, c.Name, ref)
			if err != nil {
				return nil, err
			}
			add(e)
		case schema.Relation:
			target, _, err := ResolveRelation(items, t.Name, c.Name, ref)
			if err != nil {
				return nil, err
			}
			add(target)
		}
	}
	return lines, nil
}
