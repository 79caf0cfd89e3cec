// Package client provides the runtime database client.
package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"              // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver

	"github.com/satishbabariya/climasql/internal/debug"
)

// Client is the main database client
type Client struct {
	db       *sql.DB
	provider string
}

// NewClient creates a new client for the given provider and connection string
func NewClient(provider string, connectionString string) (*Client, error) {
	driverName := getDriverName(provider)
	if driverName == "" {
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}

	db, err := sql.Open(driverName, connectionString)
	if err != nil {
		return nil, err
	}

	// An in-memory SQLite database exists per connection; keep a single
	// open connection so every statement sees the same database.
	if driverName == "sqlite3" && strings.Contains(connectionString, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	return &Client{
		db:       db,
		provider: provider,
	}, nil
}

// NewClientFromDB creates a new client from an existing database connection
func NewClientFromDB(provider string, db *sql.DB) (*Client, error) {
	return &Client{
		db:       db,
		provider: provider,
	}, nil
}

// getDriverName maps provider names to Go database driver names
func getDriverName(provider string) string {
	switch provider {
	case "postgresql", "postgres":
		return "postgres"
	case "mysql":
		return "mysql"
	case "sqlite":
		return "sqlite3"
	default:
		return ""
	}
}

// Connect establishes the database connection
func (c *Client) Connect(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Disconnect closes the database connection
func (c *Client) Disconnect(ctx context.Context) error {
	return c.db.Close()
}

// DB returns the underlying database connection
func (c *Client) DB() *sql.DB {
	return c.db
}

// Provider returns the provider name the client was created with
func (c *Client) Provider() string {
	return c.provider
}

// TransactionFunc is a function that runs within a transaction
type TransactionFunc func(tx *sql.Tx) error

// Transaction executes a function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (c *Client) Transaction(ctx context.Context, fn TransactionFunc) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			debug.Error("rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Query runs a query and logs the SQL when debug logging is enabled
func (c *Client) Query(ctx context.Context, sqlText string, args ...interface{}) (*sql.Rows, error) {
	debug.Debug("executing query", "sql", sqlText, "args", args)
	return c.db.QueryContext(ctx, sqlText, args...)
}
