// Package modkit provides module wiring and core deps
package modkit

import (
	"github.com/FFlyyy/bot/internal/modkit/repokit"
	"github.com/FFlyyy/bot/internal/platform/config"
	"github.com/FFlyyy/bot/internal/platform/logger"
	"github.com/FFlyyy/bot/internal/platform/store"
)

// Deps holds what every module may draw on; PG and CH are nil when unconfigured
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}
