package schema

import "fmt"

// TypeKind is the tag of a column type variant.
type TypeKind string

const (
	TypeCommon   TypeKind = "common"
	TypeDecimal  TypeKind = "decimal"
	TypeChars    TypeKind = "chars"
	TypeEnum     TypeKind = "enum"
	TypeRelation TypeKind = "relation"
)

// Type is one of Common, Decimal, Chars, EnumRef or Relation.
type Type interface {
	Kind() TypeKind
	fmt.Stringer
	columnType()
}

// CommonName is a plain SQL scalar type without modifiers.
type CommonName string

const (
	Text      CommonName = "text"
	Varchar   CommonName = "varchar"
	Int       CommonName = "int"
	Float     CommonName = "float"
	Bigint    CommonName = "bigint"
	Tinyint   CommonName = "tinyint"
	Smallint  CommonName = "smallint"
	Real      CommonName = "real"
	Boolean   CommonName = "boolean"
	Timestamp CommonName = "timestamp"
	Date      CommonName = "date"
	Decimal   CommonName = "decimal"
)

// CommonNames lists every recognized CommonName.
var CommonNames = []CommonName{
	Text, Varchar, Int, Float, Bigint, Tinyint, Smallint, Real, Boolean, Timestamp, Date, Decimal,
}

// ParseCommonName reports whether s names a common type.
func ParseCommonName(s string) (CommonName, bool) {
	for _, n := range CommonNames {
		if string(n) == s {
			return n, true
		}
	}
	return "", false
}

type Common struct {
	Name CommonName
}

// DecimalType is decimal(precision, scale).
type DecimalType struct {
	Precision int
	Scale     int
}

// Chars is varchar(length).
type Chars struct {
	Length int
}

// EnumRef references an Enum item by name.
type EnumRef struct {
	EnumName string
}

// Relation references a column on another table.
type Relation struct {
	TableName  string
	ForeignKey string
}

func (Common) Kind() TypeKind      { return TypeCommon }
func (DecimalType) Kind() TypeKind { return TypeDecimal }
func (Chars) Kind() TypeKind       { return TypeChars }
func (EnumRef) Kind() TypeKind     { return TypeEnum }
func (Relation) Kind() TypeKind    { return TypeRelation }

func (t Common) String() string { return string(t.Name) }

func (t DecimalType) String() string {
	return fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale)
}

func (t Chars) String() string { return fmt.Sprintf("varchar(%d)", t.Length) }

func (t EnumRef) String() string { return "enum " + t.EnumName }

func (t Relation) String() string {
	return fmt.Sprintf("relation %s.%s", t.TableName, t.ForeignKey)
}

func (Common) columnType()      {}
func (DecimalType) columnType() {}
func (Chars) columnType()       {}
func (EnumRef) columnType()     {}
func (Relation) columnType()    {}
