// Package iceberg is a convenience client for Iceberg tables queried
// through Trino. It wraps database/sql with the Trino driver and offers
// schema management, table DDL and simple CRUD helpers that assemble SQL
// text, because Trino DDL does not accept bound parameters for most of
// these shapes.
//
// # Quick Start
//
//	client := iceberg.New(
//	    iceberg.WithHost("trino.internal"),
//	    iceberg.WithCatalog("lake"),
//	    iceberg.WithSchema("events"),
//	)
//	defer client.Close()
//
//	err := client.CreateTable(ctx, "users", []iceberg.Column{
//	    {Name: "id", Type: "VARCHAR"},
//	    {Name: "age", Type: "INTEGER"},
//	})
//
// String values passed to Insert, InsertBatch and Update are escaped for
// embedding in SQL text. WHERE fragments are caller-supplied SQL and must
// not contain untrusted input.
package iceberg

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"

	_ "github.com/trinodb/trino-go-client/trino"
	"go.uber.org/zap"
)

// Defaults mirror a local single-node Trino with an Iceberg catalog.
const (
	DefaultHost    = "localhost"
	DefaultPort    = 8080
	DefaultUser    = "trino"
	DefaultCatalog = "local"
	DefaultSchema  = "default"
)

// Client talks to Iceberg tables through a Trino coordinator. The
// underlying connection pool is created lazily on first use. Safe for
// concurrent use.
type Client struct {
	host    string
	port    int
	user    string
	catalog string
	schema  string
	log     *zap.SugaredLogger

	mu sync.Mutex
	db *sql.DB
}

// Option customizes a Client.
type Option func(*Client)

// WithHost sets the Trino coordinator host.
func WithHost(host string) Option {
	return func(c *Client) { c.host = host }
}

// WithPort sets the Trino coordinator port.
func WithPort(port int) Option {
	return func(c *Client) { c.port = port }
}

// WithUser sets the Trino user.
func WithUser(user string) Option {
	return func(c *Client) { c.user = user }
}

// WithCatalog sets the Iceberg catalog name.
func WithCatalog(catalog string) Option {
	return func(c *Client) { c.catalog = catalog }
}

// WithSchema sets the default schema for unqualified table names.
func WithSchema(schema string) Option {
	return func(c *Client) { c.schema = schema }
}

// WithLogger enables statement logging at debug level.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) { c.log = log }
}

// WithDB injects an existing pool, bypassing the DSN. Used in tests.
func WithDB(db *sql.DB) Option {
	return func(c *Client) { c.db = db }
}

// New creates a Client. No connection is made until the first operation.
func New(opts ...Option) *Client {
	c := &Client{
		host:    DefaultHost,
		port:    DefaultPort,
		user:    DefaultUser,
		catalog: DefaultCatalog,
		schema:  DefaultSchema,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = zap.NewNop().Sugar()
	}
	return c
}

// DSN returns the Trino connection string this client connects with.
func (c *Client) DSN() string {
	u := url.URL{
		Scheme: "http",
		User:   url.User(c.user),
		Host:   fmt.Sprintf("%s:%d", c.host, c.port),
		RawQuery: url.Values{
			"catalog": {c.catalog},
			"schema":  {c.schema},
		}.Encode(),
	}
	return u.String()
}

func (c *Client) conn() (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}
	db, err := sql.Open("trino", c.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to trino at %s:%d: %w", c.host, c.port, err)
	}
	c.db = db
	return c.db, nil
}

// Close releases the connection pool. The client reconnects on next use.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// Execute runs a statement that returns no rows.
func (c *Client) Execute(ctx context.Context, query string) error {
	db, err := c.conn()
	if err != nil {
		return err
	}
	c.log.Debugw("executing statement", "sql", query)
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("executing %q: %w", query, err)
	}
	return nil
}

// ExecuteMany runs statements in order, stopping at the first failure.
func (c *Client) ExecuteMany(ctx context.Context, statements []string) error {
	for _, stmt := range statements {
		if err := c.Execute(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// QuerySQL runs a raw query and returns each row as a column-name map.
func (c *Client) QuerySQL(ctx context.Context, query string) ([]map[string]any, error) {
	db, err := c.conn()
	if err != nil {
		return nil, err
	}
	c.log.Debugw("executing query", "sql", query)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %q: %w", query, err)
	}
	defer rows.Close()

	return scanRows(rows)
}

func scanRows(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = values[i]
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// fullTableName qualifies table with the catalog and schema. An empty
// schema falls back to the client default.
func (c *Client) fullTableName(table, schema string) string {
	if schema == "" {
		schema = c.schema
	}
	return c.catalog + "." + schema + "." + table
}
