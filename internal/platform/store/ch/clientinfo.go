package ch

import (
	"os"
	"runtime"

	"github.com/ClickHouse/clickhouse-go/v2"

	"github.com/FFlyyy/bot/internal/core/version"
)

// BuildClientInfo identifies this process in system.query_log; role is api, discord or cli
func BuildClientInfo(name, role string) clickhouse.ClientInfo {
	if name == "" {
		name = version.Info().Service
	}
	host, _ := os.Hostname()
	return clickhouse.ClientInfo{Products: []struct{ Name, Version string }{
		{Name: name, Version: version.Info().Version},
		{Name: "role", Version: role},
		{Name: "go", Version: runtime.Version()},
		{Name: "host", Version: host},
	}}
}
