// Package sqlite opens an embedded provider store for local runs and the CLI.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// schemaDDL mirrors the columns of the PostgreSQL providers table.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS providers (
	rndrng_npi                 TEXT NOT NULL,
	rndrng_prvdr_first_name    TEXT,
	rndrng_prvdr_last_org_name TEXT,
	rndrng_prvdr_type          TEXT,
	rndrng_prvdr_city          TEXT,
	rndrng_prvdr_state_abrvtn  TEXT,
	rndrng_prvdr_zip5          TEXT
);
CREATE INDEX IF NOT EXISTS idx_providers_type_city ON providers (rndrng_prvdr_type, rndrng_prvdr_city);
`

// Client is a SQLite-backed provider store
type Client struct {
	db   *sql.DB
	path string
}

// NewClient opens the database at path with WAL and a 5s busy timeout.
// ":memory:" gives a private in-memory store.
func NewClient(ctx context.Context, path string) (*Client, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases shared across queries.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s on %s: %w", pragma, path, err)
		}
	}

	log.Info().Str("path", path).Msg("opened SQLite provider store")
	return &Client{db: db, path: path}, nil
}

// EnsureSchema creates the providers table when it does not exist yet
func (c *Client) EnsureSchema(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("apply providers schema on %s: %w", c.path, err)
	}
	return nil
}

func (c *Client) DB() *sql.DB { return c.db }

// Dialect returns the goqu dialect name for this client
func (c *Client) Dialect() string { return "sqlite3" }

func (c *Client) Ping(ctx context.Context) error { return c.db.PingContext(ctx) }

func (c *Client) Close() error {
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close sqlite %s: %w", c.path, err)
	}
	return nil
}
