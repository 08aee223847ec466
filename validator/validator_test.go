package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/tsmodel/schema"
)

func TestValidateValidSchema(t *testing.T) {
	items := []schema.Item{
		&schema.Enum{Name: "Status", Members: []string{"ACTIVE", "INACTIVE"}},
		&schema.Table{Name: "Role", Columns: []schema.Column{{Name: "id", Type: schema.Common{Name: schema.Int}}}},
		&schema.Table{Name: "User", Columns: []schema.Column{
			{Name: "id", Type: schema.Common{Name: schema.Int}},
			{Name: "status", Type: schema.EnumRef{EnumName: "Status"}},
			{Name: "role", Type: schema.Relation{TableName: "Role", ForeignKey: "id"}},
		}},
	}

	result := Validate(items)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.NoError(t, result.Err())
}

func TestValidateReportsEveryReference(t *testing.T) {
	items := []schema.Item{
		&schema.Table{Name: "Role", Columns: []schema.Column{{Name: "id", Type: schema.Common{Name: schema.Int}}}},
		&schema.Table{Name: "User", Columns: []schema.Column{
			{Name: "status", Type: schema.EnumRef{EnumName: "Status"}},
			{Name: "team", Type: schema.Relation{TableName: "Team", ForeignKey: "id"}},
			{Name: "role", Type: schema.Relation{TableName: "Role", ForeignKey: "uuid"}},
		}},
	}

	result := Validate(items)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 3)
	assert.Equal(t, "unresolved_reference", result.Errors[0].Type)
	assert.Equal(t, "status", result.Errors[0].Column)
	assert.Equal(t, "unresolved_reference", result.Errors[1].Type)
	assert.Equal(t, "team", result.Errors[1].Column)
	assert.Equal(t, "foreign_key", result.Errors[2].Type)

	err := result.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Status"`)
	assert.Contains(t, err.Error(), `"Team"`)
}

func TestValidateDuplicates(t *testing.T) {
	items := []schema.Item{
		&schema.Enum{Name: "Status", Members: []string{"A", "A"}},
		&schema.Enum{Name: "Status", Members: []string{"B"}},
		&schema.Table{Name: "T", Columns: []schema.Column{
			{Name: "id", Type: schema.Common{Name: schema.Int}},
			{Name: "id", Type: schema.Common{Name: schema.Text}},
		}},
	}

	result := Validate(items)
	types := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		types = append(types, e.Type)
	}
	assert.ElementsMatch(t, []string{"duplicate_member", "duplicate_name", "duplicate_column"}, types)
}

func TestValidateWarnings(t *testing.T) {
	items := []schema.Item{
		&schema.Enum{Name: "enum"},
		&schema.Table{Name: "Empty"},
		&schema.Table{Name: "Order", Columns: []schema.Column{
			{Name: "created-at", Type: schema.Common{Name: schema.Date}},
			{Name: "default", Type: schema.Common{Name: schema.Text}},
		}},
	}

	result := Validate(items)
	assert.True(t, result.Valid)

	types := make([]string, 0, len(result.Warnings))
	for _, w := range result.Warnings {
		types = append(types, w.Type)
	}
	assert.ElementsMatch(t, []string{"enum_name", "no_members", "no_columns", "column_name"}, types)
}
