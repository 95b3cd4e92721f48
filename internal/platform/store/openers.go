package store

import (
	"context"
	"fmt"

	"github.com/FFlyyy/bot/internal/platform/logger"
	"github.com/FFlyyy/bot/internal/platform/store/ch"
	"github.com/FFlyyy/bot/internal/platform/store/pg"
)

func openPG(ctx context.Context, cfg Config, log logger.Logger) (TxRunner, error) {
	pool, err := pg.Open(ctx, pg.Config{
		URL:         cfg.PG.URL,
		AppName:     cfg.AppName,
		MaxConns:    cfg.PG.MaxConns,
		Retries:     cfg.PG.ConnectRetries,
		PingTimeout: cfg.PG.PingTimeout,
	})
	if err != nil {
		return nil, err
	}
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.NewLogTracer(log, cfg.PG.SlowQuery)
	}
	return newPGAdapter(pool, tracer), nil
}

func openCH(ctx context.Context, cfg Config) (Clickhouse, error) {
	name := cfg.CH.ClientName
	if name == "" {
		name = cfg.AppName
	}
	c, err := ch.Open(ctx, ch.Config{URL: cfg.CH.URL, ClientName: name, ClientTag: cfg.CH.ClientTag})
	if err != nil {
		return nil, fmt.Errorf("clickhouse: %w", err)
	}
	return chAdapter{c}, nil
}
