package schema

// ItemKind distinguishes the two kinds of schema items.
type ItemKind string

const (
	KindTable ItemKind = "table"
	KindEnum  ItemKind = "enum"
)

// Item is either a *Table or an *Enum.
type Item interface {
	ItemName() string
	Kind() ItemKind
	item()
}

// Table is an ordered list of columns. Column order is the order fields are emitted in.
type Table struct {
	Name    string
	Columns []Column
}

func (t *Table) ItemName() string { return t.Name }
func (t *Table) Kind() ItemKind   { return KindTable }
func (*Table) item()              {}

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// Enum members are emitted with key and value equal to the member string.
type Enum struct {
	Name    string
	Members []string
}

func (e *Enum) ItemName() string { return e.Name }
func (e *Enum) Kind() ItemKind   { return KindEnum }
func (*Enum) item()              {}

type Column struct {
	Name       string
	Type       Type
	Attributes []Attribute
}

// Required reports whether the column carries an explicit null=false attribute.
// A missing null attribute means the column is optional.
func (c *Column) Required() bool {
	for _, attr := range c.Attributes {
		if n, ok := attr.(Null); ok {
			return !n.Value
		}
	}
	return false
}

// Attribute is a typed column flag.
type Attribute interface {
	attribute()
}

type Null struct {
	Value bool
}

type PrimaryKey struct{}

type Unique struct{}

type Default struct {
	Value string
}

func (Null) attribute()       {}
func (PrimaryKey) attribute() {}
func (Unique) attribute()     {}
func (Default) attribute()    {}
