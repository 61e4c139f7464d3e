// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package expense

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// ClientConfig holds configuration for opening the expense database.
type ClientConfig struct {
	// Path is the SQLite database file. Ignored when InMemory is set.
	Path string

	// InMemory selects a non-durable in-memory database. Used for cloud
	// deployments where no writable filesystem is available; data does
	// not survive a restart.
	InMemory bool

	Logger *slog.Logger
}

// Client provides access to the expense ledger. It owns exactly one
// database connection: SQLite supports a single writer, so the pool is
// pinned to one connection and every caller shares it.
type Client struct {
	db       *sql.DB
	path     string
	inMemory bool
	logger   *slog.Logger
}

// Open opens (creating if needed) the expense database and ensures the
// schema exists. Idempotent with respect to an existing database file.
func Open(cfg ClientConfig) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dsn := cfg.Path
	if cfg.InMemory {
		dsn = ":memory:"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// One writer at a time avoids SQLITE_BUSY; with one connection the
	// in-memory database is also stable across calls.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply busy_timeout: %w", err)
	}

	if !cfg.InMemory {
		// Best effort: WAL improves concurrent reads but some mounts
		// (e.g. network filesystems) reject it. The default journal
		// mode is fine.
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			logger.Warn("WAL mode unavailable, using default journal mode", "error", err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db:       db,
		path:     cfg.Path,
		inMemory: cfg.InMemory,
		logger:   logger,
	}, nil
}

// Close closes the database connection.
func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Path returns the database file path, or ":memory:" for the in-memory target.
func (c *Client) Path() string {
	if c.inMemory {
		return ":memory:"
	}
	return c.path
}

// InMemory reports whether the client targets the non-durable database.
func (c *Client) InMemory() bool { return c.inMemory }

// Handle is a race-safe lazy accessor for the shared Client. The first
// Acquire runs initialization exactly once; concurrent first-callers
// block until it completes and then all observe the same client (or the
// same initialization error).
type Handle struct {
	cfg    ClientConfig
	once   sync.Once
	client *Client
	err    error
}

// NewHandle returns a Handle that will open the database on first use.
func NewHandle(cfg ClientConfig) *Handle {
	return &Handle{cfg: cfg}
}

// Acquire returns the shared client, opening it on first call.
func (h *Handle) Acquire() (*Client, error) {
	h.once.Do(func() {
		h.client, h.err = Open(h.cfg)
	})
	return h.client, h.err
}

// Close closes the shared client if it was ever opened.
func (h *Handle) Close() error {
	if h.client == nil {
		return nil
	}
	return h.client.Close()
}
