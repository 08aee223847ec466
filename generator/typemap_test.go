package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/tsmodel/schema"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		name string
		typ  schema.Type
		want string
	}{
		{"text", schema.Common{Name: schema.Text}, "string"},
		{"varchar", schema.Common{Name: schema.Varchar}, "string"},
		{"int", schema.Common{Name: schema.Int}, "number"},
		{"float", schema.Common{Name: schema.Float}, "number"},
		{"bigint", schema.Common{Name: schema.Bigint}, "number"},
		{"tinyint", schema.Common{Name: schema.Tinyint}, "number"},
		{"smallint", schema.Common{Name: schema.Smallint}, "number"},
		{"real", schema.Common{Name: schema.Real}, "number"},
		{"common decimal", schema.Common{Name: schema.Decimal}, "number"},
		{"boolean", schema.Common{Name: schema.Boolean}, "boolean"},
		{"timestamp", schema.Common{Name: schema.Timestamp}, "Date"},
		{"date", schema.Common{Name: schema.Date}, "Date"},
		{"decimal", schema.DecimalType{Precision: 10, Scale: 2}, "number"},
		{"chars", schema.Chars{Length: 32}, "string"},
		{"enum", schema.EnumRef{EnumName: "Status"}, "Status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapType(tt.typ, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapTypeRelation(t *testing.T) {
	items := []schema.Item{
		&schema.Table{Name: "Account", Columns: []schema.Column{
			{Name: "code", Type: schema.Chars{Length: 8}},
		}},
		&schema.Table{Name: "Member", Columns: []schema.Column{
			{Name: "account_code", Type: schema.Relation{TableName: "Account", ForeignKey: "code"}},
		}},
	}

	t.Run("Maps to the foreign column type", func(t *testing.T) {
		got, err := MapType(schema.Relation{TableName: "Account", ForeignKey: "code"}, items)
		require.NoError(t, err)
		assert.Equal(t, "string", got)
	})

	t.Run("Follows chained relations", func(t *testing.T) {
		got, err := MapType(schema.Relation{TableName: "Member", ForeignKey: "account_code"}, items)
		require.NoError(t, err)
		assert.Equal(t, "string", got)
	})

	t.Run("Missing table", func(t *testing.T) {
		_, err := MapType(schema.Relation{TableName: "Nope", ForeignKey: "id"}, items)
		assert.True(t, IsResolutionError(err))
		assert.True(t, errors.Is(err, ErrUnresolved))
	})

	t.Run("Missing foreign key", func(t *testing.T) {
		_, err := MapType(schema.Relation{TableName: "Account", ForeignKey: "id"}, items)
		assert.True(t, IsReferenceError(err))
		assert.True(t, errors.Is(err, ErrBadReference))
	})
}

func TestMapTypeRelationCycle(t *testing.T) {
	items := []schema.Item{
		&schema.Table{Name: "A", Columns: []schema.Column{
			{Name: "b", Type: schema.Relation{TableName: "B", ForeignKey: "a"}},
		}},
		&schema.Table{Name: "B", Columns: []schema.Column{
			{Name: "a", Type: schema.Relation{TableName: "A", ForeignKey: "b"}},
		}},
	}

	_, err := MapType(schema.Relation{TableName: "A", ForeignKey: "b"}, items)
	require.Error(t, err)
	assert.True(t, IsReferenceError(err))
	assert.Contains(t, err.Error(), "relation cycle")
}

func TestMapTypeUnknown(t *testing.T) {
	_, err := MapType(schema.Common{Name: "json"}, nil)
	assert.True(t, errors.Is(err, ErrUnknownType))

	_, err = MapType(nil, nil)
	assert.True(t, errors.Is(err, ErrUnknownType))
}
