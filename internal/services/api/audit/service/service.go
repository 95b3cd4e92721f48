// Package service buffers command invocations and serves usage rollups
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/platform/logger"
	"github.com/FFlyyy/bot/internal/services/api/audit/domain"
	"github.com/FFlyyy/bot/internal/services/api/audit/repo"
)

const (
	// DefaultWindow is the usage lookback when none is given
	DefaultWindow = 24 * time.Hour
	// MaxWindow matches the table TTL
	MaxWindow = 90 * 24 * time.Hour

	defaultBatch = 256
	defaultEvery = 5 * time.Second
)

// Config controls buffering
type Config struct {
	// BatchSize triggers a flush once this many rows are buffered
	BatchSize int
	// FlushEvery is the Run loop interval
	FlushEvery time.Duration
}

// Service defines the service contract for audit
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	repo repo.Repo
	cfg  Config
	now  func() time.Time

	mu  sync.Mutex
	buf []domain.Invocation
}

// New creates an audit service
func New(r repo.Repo, cfg Config) *Svc {
	if r == nil {
		panic("audit.Service requires a non nil Repo")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatch
	}
	if cfg.FlushEvery <= 0 {
		cfg.FlushEvery = defaultEvery
	}
	return &Svc{repo: r, cfg: cfg, now: time.Now}
}

// Record buffers inv and flushes when the batch is full
func (s *Svc) Record(ctx context.Context, inv domain.Invocation) {
	if inv.At.IsZero() {
		inv.At = s.now()
	}
	s.mu.Lock()
	s.buf = append(s.buf, inv)
	full := len(s.buf) >= s.cfg.BatchSize
	s.mu.Unlock()

	if full {
		if err := s.Flush(context.WithoutCancel(ctx)); err != nil {
			logger.C(ctx).Warn().Err(err).Msg("audit flush failed")
		}
	}
}

// Flush writes everything buffered; rows are dropped if the write fails
func (s *Svc) Flush(ctx context.Context) error {
	s.mu.Lock()
	rows := s.buf
	s.buf = nil
	s.mu.Unlock()

	if len(rows) == 0 {
		return nil
	}
	if err := s.repo.Insert(ctx, rows); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "audit insert %d rows", len(rows))
	}
	return nil
}

// Pending reports how many rows await a flush
func (s *Svc) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buf)
}

// Run flushes on an interval until ctx is done, then flushes once more
func (s *Svc) Run(ctx context.Context) error {
	log := logger.Named("audit")
	t := time.NewTicker(s.cfg.FlushEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			if err := s.Flush(context.WithoutCancel(ctx)); err != nil {
				log.Warn().Err(err).Msg("audit final flush failed")
			}
			return nil
		case <-t.C:
			if err := s.Flush(ctx); err != nil {
				log.Warn().Err(err).Msg("audit flush failed")
			}
		}
	}
}

// Usage returns per-command counts within the window
func (s *Svc) Usage(ctx context.Context, in domain.UsageInput) ([]domain.Usage, error) {
	win := in.Since
	if win <= 0 {
		win = DefaultWindow
	}
	if win > MaxWindow {
		return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "since must be at most %s", MaxWindow), "since")
	}
	out, err := s.repo.Summary(ctx, s.now().Add(-win))
	if errors.Is(err, repo.ErrDisabled) {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "usage tracking is disabled")
	}
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "usage summary failed")
	}
	if out == nil {
		out = []domain.Usage{}
	}
	return out, nil
}
