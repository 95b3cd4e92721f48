package module

import (
	"time"

	"github.com/FFlyyy/bot/internal/platform/config"
	unfurlrepo "github.com/FFlyyy/bot/internal/services/api/unfurl/repo"
	unfurlsvc "github.com/FFlyyy/bot/internal/services/api/unfurl/service"
)

// Options controls the unfurl worker client and cache
type Options struct {
	WorkerURL string
	UserAgent string
	Timeout   time.Duration
	Attempts  int

	// AllowBypass lets API callers skip the cache
	AllowBypass bool

	// Worker and Cache replace the configured client and store when set
	Worker unfurlsvc.Worker
	Cache  unfurlrepo.Repo
}

// FromConfig reads with UNFURL_ prefix from root
func FromConfig(root config.Conf) Options {
	c := root.Prefix("UNFURL_")
	return Options{
		WorkerURL: c.MayString("WORKER_URL", ""),
		UserAgent: c.MayString("USER_AGENT", "utilbot-unfurl"),
		Timeout:   c.MayDuration("TIMEOUT", 15*time.Second),
		Attempts:  c.MayInt("ATTEMPTS", 3),
	}
}
