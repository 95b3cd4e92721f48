// Package pg opens a pgx pool and waits for Postgres to accept queries
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool
type Config struct {
	URL      string
	AppName  string
	MaxConns int32

	// Retries bounds the startup pings; 0 means 20
	Retries int
	// PingTimeout bounds each ping; 0 means 3s
	PingTimeout time.Duration
}

var newPool = pgxpool.NewWithConfig

// Open returns a pool once Postgres answers a ping
func Open(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	pc, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}
	pool, err := newPool(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("pg: new pool: %w", err)
	}
	if err := waitReady(ctx, pool.Ping, cfg); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func poolConfig(cfg Config) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pg: parse dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pc.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	return pc, nil
}

// waitReady pings with exponential backoff (150ms doubling to 2s)
func waitReady(ctx context.Context, ping func(context.Context) error, cfg Config) error {
	retries := cfg.Retries
	if retries <= 0 {
		retries = 20
	}
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 150 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0

	attempts := 0
	err := backoff.Retry(func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		attempts++
		pctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return ping(pctx)
	}, backoff.WithContext(backoff.WithMaxRetries(b, uint64(retries-1)), ctx))
	if err != nil {
		return fmt.Errorf("pg: not ready after %d attempts: %w", attempts, err)
	}
	return nil
}
