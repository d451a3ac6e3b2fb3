// Package pg provides PostgreSQL connection and transaction primitives
// shared by the storage layers.
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/forum-api/forum-api/shared/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Registers the PostgreSQL driver
)

// ConnectionConfig holds database connection pool settings.
type ConnectionConfig struct {
	MaxOpenConns    int           // Maximum number of open connections to the database
	MaxIdleConns    int           // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration // Maximum amount of time a connection may be reused
	ConnMaxIdleTime time.Duration // Maximum amount of time a connection may be idle
}

// DefaultConnectionConfig returns pool settings suitable for the API server.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 1 * time.Minute,
	}
}

// WithOverrides applies non-zero pool values from config.
func (c ConnectionConfig) WithOverrides(pool config.PgPool) ConnectionConfig {
	if pool.MaxOpenConns > 0 {
		c.MaxOpenConns = pool.MaxOpenConns
	}
	if pool.MaxIdleConns > 0 {
		c.MaxIdleConns = pool.MaxIdleConns
	}
	if pool.ConnMaxLifetime > 0 {
		c.ConnMaxLifetime = pool.ConnMaxLifetime
	}
	return c
}

// Connect opens a pooled connection and verifies it with a ping.
func Connect(ctx context.Context, pgCfg config.Pg, connCfg ConnectionConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", pgCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(connCfg.MaxOpenConns)
	db.SetMaxIdleConns(connCfg.MaxIdleConns)
	db.SetConnMaxLifetime(connCfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(connCfg.ConnMaxIdleTime)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
