package iceberg

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrWhereRequired is returned by Delete and Update when the WHERE clause
// is empty. Truncate removes all rows deliberately.
var ErrWhereRequired = errors.New("a WHERE clause is required")

// Row is one table row, keyed by column name.
type Row = map[string]any

// Insert inserts rows into a table and returns how many were written.
// Columns are taken from the first row, sorted by name; rows missing a
// column insert NULL for it. An empty schema uses the client default.
func (c *Client) Insert(ctx context.Context, table string, rows []Row, schema string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	sql := buildInsert(c.fullTableName(table, schema), rows)
	if err := c.Execute(ctx, sql); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// InsertBatch inserts rows in batches of batchSize statements. Returns the
// total number of rows written before any error.
func (c *Client) InsertBatch(ctx context.Context, table string, rows []Row, schema string, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 100
	}
	total := 0
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		n, err := c.Insert(ctx, table, rows[start:end], schema)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// QueryOptions shape a SELECT built by Query. Where and OrderBy are raw
// SQL fragments without their keywords.
type QueryOptions struct {
	Columns []string
	Where   string
	OrderBy string
	Limit   int
	Schema  string
}

// Query selects rows from a table.
func (c *Client) Query(ctx context.Context, table string, opts QueryOptions) ([]Row, error) {
	return c.QuerySQL(ctx, buildSelect(c.fullTableName(table, opts.Schema), opts))
}

// Count returns the number of rows, optionally filtered by a WHERE
// fragment.
func (c *Client) Count(ctx context.Context, table, where, schema string) (int64, error) {
	sql := "SELECT COUNT(*) FROM " + c.fullTableName(table, schema)
	if where != "" {
		sql += " WHERE " + where
	}
	rows, err := c.QuerySQL(ctx, sql)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	for _, v := range rows[0] {
		return toInt64(v)
	}
	return 0, nil
}

// Delete removes rows matching the WHERE fragment. The clause is
// mandatory; use Truncate to clear a table.
func (c *Client) Delete(ctx context.Context, table, where, schema string) error {
	if where == "" {
		return fmt.Errorf("deleting from %s: %w", table, ErrWhereRequired)
	}
	return c.Execute(ctx, "DELETE FROM "+c.fullTableName(table, schema)+" WHERE "+where)
}

// Truncate removes every row from a table.
func (c *Client) Truncate(ctx context.Context, table, schema string) error {
	return c.Execute(ctx, "DELETE FROM "+c.fullTableName(table, schema))
}

// Update sets columns on rows matching the WHERE fragment. Assignments
// are ordered by column name. The clause is mandatory.
func (c *Client) Update(ctx context.Context, table string, values Row, where, schema string) error {
	if where == "" {
		return fmt.Errorf("updating %s: %w", table, ErrWhereRequired)
	}
	if len(values) == 0 {
		return fmt.Errorf("updating %s: no values given", table)
	}
	sql := buildUpdate(c.fullTableName(table, schema), values, where)
	return c.Execute(ctx, sql)
}

func buildInsert(fullName string, rows []Row) string {
	columns := sortedKeys(rows[0])

	tuples := make([]string, len(rows))
	for i, row := range rows {
		vals := make([]string, len(columns))
		for j, col := range columns {
			vals[j] = escapeLiteral(row[col])
		}
		tuples[i] = "(" + strings.Join(vals, ", ") + ")"
	}

	return "INSERT INTO " + fullName + " (" + strings.Join(columns, ", ") + ") VALUES " + strings.Join(tuples, ", ")
}

func buildSelect(fullName string, opts QueryOptions) string {
	cols := "*"
	if len(opts.Columns) > 0 {
		cols = strings.Join(opts.Columns, ", ")
	}

	sql := "SELECT " + cols + " FROM " + fullName
	if opts.Where != "" {
		sql += " WHERE " + opts.Where
	}
	if opts.OrderBy != "" {
		sql += " ORDER BY " + opts.OrderBy
	}
	if opts.Limit > 0 {
		sql += " LIMIT " + strconv.Itoa(opts.Limit)
	}
	return sql
}

func buildUpdate(fullName string, values Row, where string) string {
	assignments := make([]string, 0, len(values))
	for _, col := range sortedKeys(values) {
		assignments = append(assignments, col+" = "+escapeLiteral(values[col]))
	}
	return "UPDATE " + fullName + " SET " + strings.Join(assignments, ", ") + " WHERE " + where
}

func sortedKeys(row Row) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected count type %T", v)
	}
}
