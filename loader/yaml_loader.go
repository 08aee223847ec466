package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ridoystarlord/tsmodel/schema"
)

type yamlFile struct {
	Tables []yamlTable `yaml:"tables"`
	Enums  []yamlEnum  `yaml:"enums"`
}

type yamlTable struct {
	Name    string       `yaml:"name"`
	Columns []yamlColumn `yaml:"columns"`
}

type yamlEnum struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

type yamlColumn struct {
	Name       string  `yaml:"name"`
	Type       string  `yaml:"type"`
	Null       *bool   `yaml:"null"`
	Primary    bool    `yaml:"primary"`
	Unique     bool    `yaml:"unique"`
	Default    *string `yaml:"default"`
	Enum       string  `yaml:"enum"`
	Table      string  `yaml:"table"`
	ForeignKey string  `yaml:"foreign_key"`
	Length     *int    `yaml:"length"`
	Precision  *int    `yaml:"precision"`
	Scale      *int    `yaml:"scale"`
}

// LoadItemsFromYAML reads a schema file. Tables come first, then enums, each in
// document order.
func LoadItemsFromYAML(filename string) ([]schema.Item, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes a schema document.
func ParseYAML(data []byte) ([]schema.Item, error) {
	var yf yamlFile
	if err := yaml.Unmarshal(data, &yf); err != nil {
		return nil, fmt.Errorf("unmarshalling YAML: %w", err)
	}

	var items []schema.Item
	for _, t := range yf.Tables {
		if t.Name == "" {
			return nil, fmt.Errorf("table without name")
		}
		table := &schema.Table{Name: t.Name}
		for _, c := range t.Columns {
			col, err := c.column()
			if err != nil {
				return nil, fmt.Errorf("table %s: %w", t.Name, err)
			}
			table.Columns = append(table.Columns, col)
		}
		items = append(items, table)
	}
	for _, e := range yf.Enums {
		if e.Name == "" {
			return nil, fmt.Errorf("enum without name")
		}
		items = append(items, &schema.Enum{Name: e.Name, Members: e.Items})
	}
	return items, nil
}

func (c yamlColumn) column() (schema.Column, error) {
	if c.Name == "" {
		return schema.Column{}, fmt.Errorf("column without name")
	}
	typ, err := c.columnType()
	if err != nil {
		return schema.Column{}, fmt.Errorf("column %s: %w", c.Name, err)
	}

	col := schema.Column{Name: c.Name, Type: typ}
	if c.Null != nil {
		col.Attributes = append(col.Attributes, schema.Null{Value: *c.Null})
	}
	if c.Primary {
		col.Attributes = append(col.Attributes, schema.PrimaryKey{})
	}
	if c.Unique {
		col.Attributes = append(col.Attributes, schema.Unique{})
	}
	if c.Default != nil {
		col.Attributes = append(col.Attributes, schema.Default{Value: *c.Default})
	}
	return col, nil
}

func (c yamlColumn) columnType() (schema.Type, error) {
	switch c.Type {
	case "enum":
		if c.Enum == "" {
			return nil, fmt.Errorf("enum column needs an enum name")
		}
		return schema.EnumRef{EnumName: c.Enum}, nil
	case "relation":
		if c.Table == "" || c.ForeignKey == "" {
			return nil, fmt.Errorf("relation column needs table and foreign_key")
		}
		return schema.Relation{TableName: c.Table, ForeignKey: c.ForeignKey}, nil
	case "varchar":
		if c.Length != nil {
			return schema.Chars{Length: *c.Length}, nil
		}
	case "decimal":
		if c.Precision != nil {
			scale := 0
			if c.Scale != nil {
				scale = *c.Scale
			}
			return schema.DecimalType{Precision: *c.Precision, Scale: scale}, nil
		}
	}

	name, ok := schema.ParseCommonName(c.Type)
	if !ok {
		return nil, fmt.Errorf("unsupported type %q", c.Type)
	}
	return schema.Common{Name: name}, nil
}
