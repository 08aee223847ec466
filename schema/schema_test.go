package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnRequired(t *testing.T) {
	tests := []struct {
		name  string
		attrs []Attribute
		want  bool
	}{
		{"no attributes", nil, false},
		{"null false", []Attribute{Null{Value: false}}, true},
		{"null true", []Attribute{Null{Value: true}}, false},
		{"other flags only", []Attribute{PrimaryKey{}, Unique{}}, false},
		{"null false among others", []Attribute{PrimaryKey{}, Null{Value: false}, Default{Value: "0"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Column{Name: "id", Type: Common{Name: Int}, Attributes: tt.attrs}
			assert.Equal(t, tt.want, c.Required())
		})
	}
}

func TestLookup(t *testing.T) {
	items := []Item{
		&Enum{Name: "Status", Members: []string{"ACTIVE"}},
		&Table{Name: "User", Columns: []Column{{Name: "id", Type: Common{Name: Int}}}},
		&Table{Name: "Status", Columns: nil},
	}

	e := FindEnum(items, "Status")
	require.NotNil(t, e)
	assert.Equal(t, KindEnum, e.Kind())

	tbl := FindTable(items, "Status")
	require.NotNil(t, tbl)
	assert.Equal(t, KindTable, tbl.Kind())

	assert.Nil(t, FindEnum(items, "User"))
	assert.Nil(t, FindTable(items, "Missing"))

	user := FindTable(items, "User")
	require.NotNil(t, user)
	assert.NotNil(t, user.Column("id"))
	assert.Nil(t, user.Column("ID"))

	assert.Len(t, Tables(items), 2)
	assert.Len(t, Enums(items), 1)
}

func TestParseCommonName(t *testing.T) {
	n, ok := ParseCommonName("timestamp")
	assert.True(t, ok)
	assert.Equal(t, Timestamp, n)

	_, ok = ParseCommonName("json")
	assert.False(t, ok)
}
