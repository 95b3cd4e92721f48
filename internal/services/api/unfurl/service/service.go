// Package service contains unfurl workflows
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/FFlyyy/bot/internal/adapters/unfurler"
	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/platform/logger"
	"github.com/FFlyyy/bot/internal/services/api/unfurl/domain"
	"github.com/FFlyyy/bot/internal/services/api/unfurl/repo"
)

const (
	// CacheLength is how long a resolved destination is served from cache
	CacheLength = 24 * time.Hour
	// MaxContinues caps how often a depth-limited chain is resumed
	MaxContinues = 5
)

// MaxContinuesMessage is returned when a caller asks for more than MaxContinues
const MaxContinuesMessage = "Maximum of 5 redirects allowed."

// SkipCacheDenied is returned when a caller may not bypass the cache
const SkipCacheDenied = "You do not have permission to skip the cache."

// ErrUnresolvable means the worker could not be reached
var ErrUnresolvable = errors.New("could not resolve this url")

// Worker follows one hop of a redirect chain
type Worker interface {
	Hop(ctx context.Context, url string) (unfurler.Hop, error)
}

// Service defines the service contract for unfurl
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	worker Worker
	cache  repo.Repo
	now    func() time.Time
	group  singleflight.Group
}

// New creates an unfurl service
func New(worker Worker, cache repo.Repo) *Svc {
	if worker == nil {
		panic("unfurl.Service requires a non nil Worker")
	}
	if cache == nil {
		panic("unfurl.Service requires a non nil cache Repo")
	}
	return &Svc{worker: worker, cache: cache, now: time.Now}
}

// NewWithClock is New with an injectable clock
func NewWithClock(worker Worker, cache repo.Repo, now func() time.Time) *Svc {
	s := New(worker, cache)
	s.now = now
	return s
}

// Unfurl follows in.URL to its final destination
//
// Identical concurrent requests share one walk of the chain.
func (s *Svc) Unfurl(ctx context.Context, in domain.UnfurlInput) (domain.Result, error) {
	if in.MaxContinues > MaxContinues {
		return domain.Result{}, perr.WithField(perr.New(perr.ErrorCodeValidation, MaxContinuesMessage), "max_continues")
	}
	if in.MaxContinues < 0 {
		in.MaxContinues = 0
	}

	key := in.URL + "|" + strconv.Itoa(in.MaxContinues) + "|" + strconv.FormatBool(in.CacheEnabled())
	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.walk(ctx, in)
	})
	if shared {
		logger.C(ctx).Debug().Str("url", in.URL).Msg("unfurl shared in-flight result")
	}
	if err != nil {
		return domain.Result{}, err
	}
	return v.(domain.Result), nil
}

func (s *Svc) walk(ctx context.Context, in domain.UnfurlInput) (domain.Result, error) {
	log := logger.C(ctx)
	useCache := in.CacheEnabled()
	if !useCache {
		log.Info().Str("url", in.URL).Msg("skipping cache for unfurl")
	}

	next := in.URL
	redirects, continues := 0, 0
	for {
		if useCache {
			if hit, ok := s.lookup(ctx, next); ok {
				hit.URL = in.URL
				return hit, nil
			}
		}

		h, err := s.worker.Hop(ctx, next)
		if err != nil {
			return domain.Result{}, mapWorkerError(err)
		}

		switch h.Outcome {
		case unfurler.Resolved:
			now := s.now().UTC()
			exp := now.Add(CacheLength)
			depth := redirects + h.Depth
			s.store(ctx, repo.Entry{URL: in.URL, Destination: h.Destination, Depth: depth, ExpiresAt: exp})
			return domain.Result{URL: in.URL, Destination: h.Destination, Depth: &depth, CreatedAt: &now, ExpiresAt: &exp}, nil

		case unfurler.Rejected:
			log.Warn().Str("url", next).Str("error", h.Error).Msg("unfurl rejected")
			return domain.Result{URL: in.URL, Error: h.Error}, nil

		case unfurler.DepthLimited:
			if continues < in.MaxContinues {
				log.Debug().
					Str("url", next).
					Str("final", h.Final).
					Str("next", h.Next).
					Int("continue", continues+1).
					Int("max_continues", in.MaxContinues).
					Msg("unfurl hit worker depth, continuing")
				next = h.Next
				redirects += h.Depth + 1
				continues++
				continue
			}
			redirects += h.Depth
			log.Info().Str("url", in.URL).Int("redirects", redirects).Msg("unfurl gave up at depth limit")
			d := redirects
			return domain.Result{URL: in.URL, Destination: h.Next, Depth: &d, Error: h.Error}, nil

		case unfurler.Broken:
			redirects += h.Depth
			log.Warn().Str("url", in.URL).Int("redirects", redirects).Str("final", h.Final).Msg("unfurl chain has a broken link")
			d := redirects
			return domain.Result{URL: in.URL, Destination: h.Final, Depth: &d, Error: h.Error}, nil

		default:
			return domain.Result{}, perr.Internalf("unfurl: unknown worker outcome %d", h.Outcome)
		}
	}
}

// lookup returns a live cache entry, evicting it when stale
func (s *Svc) lookup(ctx context.Context, url string) (domain.Result, bool) {
	log := logger.C(ctx)
	e, ok, err := s.cache.Get(ctx, url)
	if err != nil {
		log.Warn().Err(err).Int("status", perr.HTTPStatus(err)).Str("url", url).Msg("unfurl cache read failed")
		return domain.Result{}, false
	}
	if !ok {
		return domain.Result{}, false
	}
	if e.Expired(s.now()) {
		log.Debug().Str("url", url).Msg("unfurl cache entry expired, deleting")
		if err := s.cache.Delete(ctx, url); err != nil {
			log.Warn().Err(err).Str("url", url).Msg("unfurl cache delete failed")
		}
		return domain.Result{}, false
	}
	created := e.ExpiresAt.Add(-CacheLength)
	exp := e.ExpiresAt
	depth := e.Depth
	return domain.Result{Destination: e.Destination, Depth: &depth, CreatedAt: &created, ExpiresAt: &exp, Cached: true}, true
}

func (s *Svc) store(ctx context.Context, e repo.Entry) {
	if err := s.cache.Put(ctx, e); err != nil {
		logger.C(ctx).Warn().Err(err).Str("url", e.URL).Msg("unfurl cache write failed")
	}
}

func mapWorkerError(err error) error {
	var se *unfurler.StatusError
	switch {
	case errors.Is(err, unfurler.ErrUnreachable):
		return perr.Wrap(fmt.Errorf("%w: %w", ErrUnresolvable, err), perr.ErrorCodeUnavailable, "Could not resolve this URL.")
	case errors.As(err, &se):
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "unfurl worker returned status %d", se.Status)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return perr.WrapIf(err, perr.ErrorCodeUnavailable, "unfurl worker failed")
	}
}

// CheckBypass rejects in when it skips the cache and the caller is not allowed to
func CheckBypass(in domain.UnfurlInput, allowed bool) error {
	if in.CacheEnabled() || allowed {
		return nil
	}
	return perr.WithField(perr.New(perr.ErrorCodeForbidden, SkipCacheDenied), "use_cache")
}
