package store

import (
	"time"

	"github.com/FFlyyy/bot/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled  bool
	URL      string
	MaxConns int32

	// LogSQL logs every statement; those taking SlowQuery or longer at warn
	LogSQL    bool
	SlowQuery time.Duration

	// startup pings: ConnectRetries attempts of up to PingTimeout each
	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string

	// ClientName and ClientTag identify this process in system.query_log
	ClientName string
	ClientTag  string
}

// FromConfig reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_* from root
//
// A backend is enabled only when its DBURL is set. tag identifies the calling
// process to ClickHouse.
func FromConfig(root config.Conf, tag string) Config {
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	pgURL := pgCfg.MayString("DBURL", "")
	chURL := chCfg.MayString("DBURL", "")
	return Config{
		AppName: "utilbot",
		PG: PGConfig{
			Enabled:        pgURL != "",
			URL:            pgURL,
			MaxConns:       int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQuery:      time.Duration(pgCfg.MayInt("SLOW_MS", 500)) * time.Millisecond,
			LogSQL:         pgCfg.MayBool("LOG_SQL", false),
			ConnectRetries: pgCfg.MayInt("CONNECT_RETRIES", 0),
			PingTimeout:    pgCfg.MayDuration("PING_TIMEOUT", 0),
		},
		CH: CHConfig{
			Enabled:   chURL != "",
			URL:       chURL,
			ClientTag: tag,
		},
	}
}
