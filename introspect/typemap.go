package introspect

import (
	"strings"

	"github.com/ridoystarlord/tsmodel/schema"
)

var commonTypes = map[string]schema.CommonName{
	"integer":                     schema.Int,
	"bigint":                      schema.Bigint,
	"smallint":                    schema.Smallint,
	"real":                        schema.Real,
	"double precision":            schema.Float,
	"boolean":                     schema.Boolean,
	"text":                        schema.Text,
	"uuid":                        schema.Text,
	"timestamp without time zone": schema.Timestamp,
	"timestamp with time zone":    schema.Timestamp,
	"date":                        schema.Date,
}

// MapColumnType converts an information_schema column type to a schema type.
// The second result is false when the type has no counterpart; the column is
// then typed as text.
func MapColumnType(c ExistingColumn, isEnum map[string]bool) (schema.Type, bool) {
	dataType := strings.ToLower(c.DataType)
	if name, ok := commonTypes[dataType]; ok {
		return schema.Common{Name: name}, true
	}

	switch dataType {
	case "character varying", "character":
		if c.CharMaxLength != nil {
			return schema.Chars{Length: int(*c.CharMaxLength)}, true
		}
		return schema.Common{Name: schema.Varchar}, true
	case "numeric":
		if c.NumericPrecision != nil {
			scale := 0
			if c.NumericScale != nil {
				scale = int(*c.NumericScale)
			}
			return schema.DecimalType{Precision: int(*c.NumericPrecision), Scale: scale}, true
		}
		return schema.Common{Name: schema.Decimal}, true
	case "user-defined":
		if isEnum[c.UDTName] {
			return schema.EnumRef{EnumName: c.UDTName}, true
		}
	}
	return schema.Common{Name: schema.Text}, false
}
