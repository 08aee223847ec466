package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/tsmodel/schema"
)

func TestEmitColumnMarkers(t *testing.T) {
	table := &schema.Table{Name: "T"}
	for _, tt := range []struct {
		name     string
		attrs    []schema.Attribute
		annotate bool
		want     string
	}{
		{"no attribute", nil, false, "n?: string;"},
		{"null true", []schema.Attribute{schema.Null{Value: true}}, false, "n?: string;"},
		{"null false", []schema.Attribute{schema.Null{Value: false}}, false, "n: string;"},
		{"null false annotated", []schema.Attribute{schema.Null{Value: false}}, true, "n!: string;"},
		{"no attribute annotated", nil, true, "n?: string;"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			col := &schema.Column{Name: "n", Type: schema.Common{Name: schema.Text}, Attributes: tt.attrs}
			lines, err := EmitColumn(nil, table, col, tt.annotate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines[len(lines)-1])
		})
	}
}

func TestEmitColumnAnnotations(t *testing.T) {
	table := &schema.Table{Name: "T"}
	items := []schema.Item{&schema.Enum{Name: "Kind", Members: []string{"A"}}}

	tests := []struct {
		name string
		typ  schema.Type
		want []string
	}{
		{"integer", schema.Common{Name: schema.Smallint}, []string{
			"@Transform((param?: any): number | null => (param?.value === null || param?.value === undefined || param?.value === '') ? null : parseInt(param.value))",
			"@IsNumber({}, { message: 'c must be a number (integer)' })",
			"c?: number;",
		}},
		{"float", schema.Common{Name: schema.Real}, []string{
			"@Transform((param?: any): number | null => (param?.value === null || param?.value === undefined || param?.value === '') ? null : parseFloat(param.value))",
			"@IsNumber({}, { message: 'c must be a number (decimal)' })",
			"c?: number;",
		}},
		{"decimal", schema.DecimalType{Precision: 8, Scale: 2}, []string{
			"@Transform((param?: any): number | null => (param?.value === null || param?.value === undefined || param?.value === '') ? null : parseFloat(param.value))",
			"@IsNumber({}, { message: 'c must be a number (decimal)' })",
			"c?: number;",
		}},
		{"boolean", schema.Common{Name: schema.Boolean}, []string{
			"@Transform((param?: any): boolean | null => (param?.value === null || param?.value === undefined || param?.value === '') ? null : (param?.value === 'true' || ((typeof param?.value === 'boolean') && param?.value)))",
			"@IsBoolean({ message: 'c must be a boolean' })",
			"c?: boolean;",
		}},
		{"date", schema.Common{Name: schema.Date}, []string{
			"@Transform((param?: any): Date | null => (param?.value === null || param?.value === undefined || param?.value === '') ? null : new Date(param?.value))",
			"@IsISO8601({}, { message: 'c must be an ISO8601 date' })",
			"c?: Date;",
		}},
		{"text", schema.Common{Name: schema.Text}, []string{
			"@IsString({ message: 'c must be a string' })",
			"c?: string;",
		}},
		{"chars", schema.Chars{Length: 4}, []string{
			"@IsString({ message: 'c must be a string' })",
			"c?: string;",
		}},
		{"enum", schema.EnumRef{EnumName: "Kind"}, []string{
			"@IsEnum(Kind, { message: 'c must be enum Kind' })",
			"c?: Kind;",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := &schema.Column{Name: "c", Type: tt.typ}
			lines, err := EmitColumn(items, table, col, true)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)

			plain, err := EmitColumn(items, table, col, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want[len(tt.want)-1:], plain)
		})
	}
}

func TestEmitColumnRelationHasNoDecorators(t *testing.T) {
	items := []schema.Item{
		&schema.Table{Name: "Role", Columns: []schema.Column{{Name: "id", Type: schema.Common{Name: schema.Int}}}},
	}
	user := &schema.Table{Name: "User"}
	col := &schema.Column{
		Name:       "role",
		Type:       schema.Relation{TableName: "Role", ForeignKey: "id"},
		Attributes: []schema.Attribute{schema.Null{Value: false}},
	}

	lines, err := EmitColumn(items, user, col, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"otm_role!: Role;", "role!: number;"}, lines)
}

func TestEmitColumnQuotesMessages(t *testing.T) {
	col := &schema.Column{Name: "it's", Type: schema.Common{Name: schema.Text}}
	lines, err := EmitColumn(nil, &schema.Table{Name: "T"}, col, true)
	require.NoError(t, err)
	assert.Equal(t, `@IsString({ message: 'it\'s must be a string' })`, lines[0])
}

func TestEmitColumnUnresolvedEnum(t *testing.T) {
	col := &schema.Column{Name: "kind", Type: schema.EnumRef{EnumName: "Missing"}}
	_, err := EmitColumn(nil, &schema.Table{Name: "T"}, col, false)
	assert.True(t, IsResolutionError(err))
}

func TestRulesFor(t *testing.T) {
	rules, err := RulesFor(&schema.Column{Name: "n", Type: schema.Common{Name: schema.Bigint}})
	require.NoError(t, err)
	assert.Equal(t, []Rule{{
		Category:  CategoryInteger,
		Message:   "n must be a number (integer)",
		Transform: TransformInteger,
	}}, rules)

	rules, err = RulesFor(&schema.Column{Name: "r", Type: schema.Relation{TableName: "X", ForeignKey: "id"}})
	require.NoError(t, err)
	assert.Empty(t, rules)

	_, err = RulesFor(&schema.Column{Name: "j", Type: schema.Common{Name: "json"}})
	assert.True(t, IsUnknownTypeError(err))
}
