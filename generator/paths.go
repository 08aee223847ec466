package generator

import (
	"path"
	"strings"

	"github.com/ridoystarlord/tsmodel/schema"
)

// Output layout, relative to the output folder.
const (
	RootDir   = "ts-model"
	Extension = ".ts"
)

// Dir returns the folder holding items of the given kind.
func Dir(kind schema.ItemKind) string {
	return path.Join(RootDir, string(kind))
}

// FileName returns the generated file path of an item, e.g. ts-model/table/User.ts.
func FileName(kind schema.ItemKind, name string) string {
	return path.Join(Dir(kind), name+Extension)
}

// ModulePath returns the import path of an item without extension.
func ModulePath(kind schema.ItemKind, name string) string {
	return path.Join(Dir(kind), name)
}

// importSpecifier returns the relative module specifier used by a file of kind
// from to import the item (kind, name).
func importSpecifier(from schema.ItemKind, kind schema.ItemKind, name string) string {
	if from == kind {
		return "./" + name
	}
	return "../" + string(kind) + "/" + name
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}
