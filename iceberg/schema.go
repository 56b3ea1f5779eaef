package iceberg

import (
	"context"
	"fmt"
	"strings"
)

// Column is one column of a table definition. Order is preserved in the
// generated DDL.
type Column struct {
	Name string
	Type string
}

// ColumnInfo describes an existing table column.
type ColumnInfo struct {
	Name     string
	Type     string
	Nullable bool
}

// ListSchemas lists the schemas in the catalog.
func (c *Client) ListSchemas(ctx context.Context) ([]string, error) {
	rows, err := c.QuerySQL(ctx, "SHOW SCHEMAS FROM "+c.catalog)
	if err != nil {
		return nil, err
	}
	return singleColumn(rows), nil
}

// CreateSchema creates a schema in the catalog.
func (c *Client) CreateSchema(ctx context.Context, schema string, ifNotExists bool) error {
	return c.Execute(ctx, buildCreateSchema(c.catalog, schema, ifNotExists))
}

// DropSchema removes a schema from the catalog.
func (c *Client) DropSchema(ctx context.Context, schema string, ifExists bool) error {
	return c.Execute(ctx, buildDropSchema(c.catalog, schema, ifExists))
}

// ListTables lists the tables in a schema. An empty schema uses the
// client default.
func (c *Client) ListTables(ctx context.Context, schema string) ([]string, error) {
	if schema == "" {
		schema = c.schema
	}
	rows, err := c.QuerySQL(ctx, "SHOW TABLES FROM "+c.catalog+"."+schema)
	if err != nil {
		return nil, err
	}
	return singleColumn(rows), nil
}

// TableExists reports whether the table exists in the schema.
func (c *Client) TableExists(ctx context.Context, table, schema string) (bool, error) {
	tables, err := c.ListTables(ctx, schema)
	if err != nil {
		return false, err
	}
	for _, t := range tables {
		if t == table {
			return true, nil
		}
	}
	return false, nil
}

// CreateTable creates an Iceberg table. Column order follows the slice.
//
// Example:
//
//	err := client.CreateTable(ctx, "users", []iceberg.Column{
//	    {Name: "id", Type: "VARCHAR"},
//	    {Name: "age", Type: "INTEGER"},
//	    {Name: "created_at", Type: "TIMESTAMP"},
//	}, iceberg.WithIfNotExists(), iceberg.WithPartitioning("created_at"))
func (c *Client) CreateTable(ctx context.Context, table string, columns []Column, opts ...TableOption) error {
	cfg := tableConfig{ifNotExists: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(columns) == 0 {
		return fmt.Errorf("creating table %s: no columns given", table)
	}
	full := c.fullTableName(table, cfg.schema)
	return c.Execute(ctx, buildCreateTable(full, columns, cfg.ifNotExists, cfg.partitionedBy))
}

// DropTable removes a table.
func (c *Client) DropTable(ctx context.Context, table, schema string, ifExists bool) error {
	return c.Execute(ctx, buildDropTable(c.fullTableName(table, schema), ifExists))
}

// DescribeTable returns the columns of an existing table.
func (c *Client) DescribeTable(ctx context.Context, table, schema string) ([]ColumnInfo, error) {
	db, err := c.conn()
	if err != nil {
		return nil, err
	}
	full := c.fullTableName(table, schema)

	rows, err := db.QueryContext(ctx, "DESCRIBE "+full)
	if err != nil {
		return nil, fmt.Errorf("describing %s: %w", full, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var infos []ColumnInfo
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		info := ColumnInfo{
			Name: asString(values[0]),
			Type: asString(values[1]),
		}
		if len(values) > 2 {
			info.Nullable = asString(values[2]) == "YES"
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

type tableConfig struct {
	schema        string
	ifNotExists   bool
	partitionedBy []string
}

// TableOption customizes CreateTable.
type TableOption func(*tableConfig)

// WithTableSchema overrides the client default schema for this table.
func WithTableSchema(schema string) TableOption {
	return func(c *tableConfig) { c.schema = schema }
}

// WithIfNotExists keeps the IF NOT EXISTS clause (the default).
func WithIfNotExists() TableOption {
	return func(c *tableConfig) { c.ifNotExists = true }
}

// WithoutIfNotExists makes CreateTable fail when the table exists.
func WithoutIfNotExists() TableOption {
	return func(c *tableConfig) { c.ifNotExists = false }
}

// WithPartitioning sets the Iceberg partitioning columns.
func WithPartitioning(columns ...string) TableOption {
	return func(c *tableConfig) { c.partitionedBy = columns }
}

func buildCreateSchema(catalog, schema string, ifNotExists bool) string {
	exists := ""
	if ifNotExists {
		exists = "IF NOT EXISTS "
	}
	return "CREATE SCHEMA " + exists + catalog + "." + schema
}

func buildDropSchema(catalog, schema string, ifExists bool) string {
	exists := ""
	if ifExists {
		exists = "IF EXISTS "
	}
	return "DROP SCHEMA " + exists + catalog + "." + schema
}

func buildCreateTable(fullName string, columns []Column, ifNotExists bool, partitionedBy []string) string {
	exists := ""
	if ifNotExists {
		exists = "IF NOT EXISTS "
	}
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = col.Name + " " + col.Type
	}

	sql := "CREATE TABLE " + exists + fullName + " (" + strings.Join(defs, ", ") + ")"
	if len(partitionedBy) > 0 {
		sql += " WITH (partitioning = ARRAY['" + strings.Join(partitionedBy, "', '") + "'])"
	}
	return sql
}

func buildDropTable(fullName string, ifExists bool) string {
	exists := ""
	if ifExists {
		exists = "IF EXISTS "
	}
	return "DROP TABLE " + exists + fullName
}

func singleColumn(rows []map[string]any) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		for _, v := range row {
			out = append(out, asString(v))
		}
	}
	return out
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
