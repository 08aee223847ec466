// Package introspect reads tables, enums and foreign keys from a live Postgres
// schema and converts them into schema items.
package introspect

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/ridoystarlord/tsmodel/schema"
)

// DefaultSchema is introspected when no schema name is given.
const DefaultSchema = "public"

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// ExistingColumn describes a column as information_schema reports it.
type ExistingColumn struct {
	ColumnName       string
	DataType         string
	UDTName          string
	IsNullable       bool
	ColumnDefault    *string
	IsPrimaryKey     bool
	IsUnique         bool
	CharMaxLength    *int32
	NumericPrecision *int32
	NumericScale     *int32
}

type ExistingForeignKey struct {
	ColumnName       string
	ReferencesTable  string
	ReferencesColumn string
}

// Introspect returns one table item per base table of schemaName, in name
// order, followed by one enum item per enum type.
func Introspect(ctx context.Context, q Querier, schemaName string) ([]schema.Item, error) {
	if schemaName == "" {
		schemaName = DefaultSchema
	}

	enumNames, enums, err := getEnums(ctx, q, schemaName)
	if err != nil {
		return nil, fmt.Errorf("getting enums: %w", err)
	}
	isEnum := make(map[string]bool, len(enumNames))
	for _, name := range enumNames {
		isEnum[name] = true
	}

	tableNames, err := getTableNames(ctx, q, schemaName)
	if err != nil {
		return nil, err
	}

	var items []schema.Item
	for _, tableName := range tableNames {
		columns, err := getColumns(ctx, q, schemaName, tableName)
		if err != nil {
			return nil, fmt.Errorf("getting columns for table %s: %w", tableName, err)
		}

		foreignKeys, err := getForeignKeys(ctx, q, schemaName, tableName)
		if err != nil {
			return nil, fmt.Errorf("getting foreign keys for table %s: %w", tableName, err)
		}

		items = append(items, buildTable(tableName, columns, foreignKeys, isEnum))
	}

	for _, name := range enumNames {
		items = append(items, &schema.Enum{Name: name, Members: enums[name]})
	}
	return items, nil
}

// buildTable converts introspected columns into a table. Foreign key columns
// become relations.
func buildTable(name string, columns []ExistingColumn, fks []ExistingForeignKey, isEnum map[string]bool) *schema.Table {
	fkByColumn := make(map[string]ExistingForeignKey, len(fks))
	for _, fk := range fks {
		if _, dup := fkByColumn[fk.ColumnName]; !dup {
			fkByColumn[fk.ColumnName] = fk
		}
	}

	table := &schema.Table{Name: name}
	for _, c := range columns {
		var typ schema.Type
		if fk, ok := fkByColumn[c.ColumnName]; ok {
			typ = schema.Relation{TableName: fk.ReferencesTable, ForeignKey: fk.ReferencesColumn}
		} else {
			var supported bool
			typ, supported = MapColumnType(c, isEnum)
			if !supported {
				log.Printf("⚠️  %s.%s: unsupported type %q, generating string", name, c.ColumnName, c.DataType)
			}
		}

		attrs := []schema.Attribute{schema.Null{Value: c.IsNullable}}
		if c.IsPrimaryKey {
			attrs = append(attrs, schema.PrimaryKey{})
		}
		if c.IsUnique {
			attrs = append(attrs, schema.Unique{})
		}
		if c.ColumnDefault != nil {
			attrs = append(attrs, schema.Default{Value: *c.ColumnDefault})
		}
		table.Columns = append(table.Columns, schema.Column{Name: c.ColumnName, Type: typ, Attributes: attrs})
	}
	return table
}

func getEnums(ctx context.Context, q Querier, schemaName string) ([]string, map[string][]string, error) {
	enumsQuery := `
	SELECT t.typname::text, e.enumlabel::text
	FROM pg_type t
	JOIN pg_enum e ON e.enumtypid = t.oid
	JOIN pg_namespace n ON n.oid = t.typnamespace
	WHERE n.nspname = $1
	ORDER BY t.typname, e.enumsortorder;
	`

	rows, err := q.Query(ctx, enumsQuery, schemaName)
	if err != nil {
		return nil, nil, fmt.Errorf("querying enums: %w", err)
	}
	defer rows.Close()

	var names []string
	members := make(map[string][]string)
	for rows.Next() {
		var name, label string
		if err := rows.Scan(&name, &label); err != nil {
			return nil, nil, fmt.Errorf("scanning enum: %w", err)
		}
		if _, ok := members[name]; !ok {
			names = append(names, name)
		}
		members[name] = append(members[name], label)
	}

	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("iterating enum rows: %w", rows.Err())
	}

	return names, members, nil
}

func getTableNames(ctx context.Context, q Querier, schemaName string) ([]string, error) {
	tablesQuery := `
	SELECT table_name::text
	FROM information_schema.tables
	WHERE table_schema = $1 AND table_type = 'BASE TABLE'
	ORDER BY table_name;
	`

	rows, err := q.Query(ctx, tablesQuery, schemaName)
	if err != nil {
		return nil, fmt.Errorf("querying tables: %w", err)
	}
	defer rows.Close()

	var tableNames []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		tableNames = append(tableNames, tableName)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterating table rows: %w", rows.Err())
	}

	return tableNames, nil
}

func getColumns(ctx context.Context, q Querier, schemaName, tableName string) ([]ExistingColumn, error) {
	columnsQuery := `
	SELECT
		c.column_name::text,
		c.data_type::text,
		c.udt_name::text,
		(c.is_nullable = 'YES') AS is_nullable,
		c.column_default::text,
		EXISTS (
			SELECT 1
			FROM information_schema.key_column_usage kcu
			JOIN information_schema.table_constraints tc
				ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
			WHERE tc.constraint_type = 'PRIMARY KEY'
				AND kcu.table_schema = c.table_schema
				AND kcu.table_name = c.table_name
				AND kcu.column_name = c.column_name
		) AS is_primary,
		EXISTS (
			SELECT 1
			FROM information_schema.key_column_usage kcu
			JOIN information_schema.table_constraints tc
				ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
			WHERE tc.constraint_type = 'UNIQUE'
				AND kcu.table_schema = c.table_schema
				AND kcu.table_name = c.table_name
				AND kcu.column_name = c.column_name
		) AS is_unique,
		c.character_maximum_length::int,
		c.numeric_precision::int,
		c.numeric_scale::int
	FROM information_schema.columns c
	WHERE c.table_schema = $1 AND c.table_name = $2
	ORDER BY c.ordinal_position;
	`

	rows, err := q.Query(ctx, columnsQuery, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	defer rows.Close()

	var columns []ExistingColumn
	for rows.Next() {
		var col ExistingColumn
		if err := rows.Scan(
			&col.ColumnName,
			&col.DataType,
			&col.UDTName,
			&col.IsNullable,
			&col.ColumnDefault,
			&col.IsPrimaryKey,
			&col.IsUnique,
			&col.CharMaxLength,
			&col.NumericPrecision,
			&col.NumericScale,
		); err != nil {
			return nil, fmt.Errorf("scanning column: %w", err)
		}
		columns = append(columns, col)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterating column rows: %w", rows.Err())
	}

	return columns, nil
}

func getForeignKeys(ctx context.Context, q Querier, schemaName, tableName string) ([]ExistingForeignKey, error) {
	foreignKeysQuery := `
	SELECT
		kcu.column_name::text,
		ccu.table_name::text AS foreign_table_name,
		ccu.column_name::text AS foreign_column_name
	FROM information_schema.table_constraints AS tc
	JOIN information_schema.key_column_usage AS kcu
		ON tc.constraint_name = kcu.constraint_name
		AND tc.table_schema = kcu.table_schema
	JOIN information_schema.constraint_column_usage AS ccu
		ON ccu.constraint_name = tc.constraint_name
		AND ccu.table_schema = tc.table_schema
	WHERE tc.constraint_type = 'FOREIGN KEY'
		AND tc.table_schema = $1
		AND tc.table_name = $2
	ORDER BY tc.constraint_name, kcu.ordinal_position;
	`

	rows, err := q.Query(ctx, foreignKeysQuery, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("querying foreign keys: %w", err)
	}
	defer rows.Close()

	var foreignKeys []ExistingForeignKey
	for rows.Next() {
		var fk ExistingForeignKey
		if err := rows.Scan(
			&fk.ColumnName,
			&fk.ReferencesTable,
			&fk.ReferencesColumn,
		); err != nil {
			return nil, fmt.Errorf("scanning foreign key: %w", err)
		}
		foreignKeys = append(foreignKeys, fk)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterating foreign key rows: %w", rows.Err())
	}

	return foreignKeys, nil
}
