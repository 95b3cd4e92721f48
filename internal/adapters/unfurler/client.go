// Package unfurler is the HTTP client for the URL unfurling worker
//
// The worker follows a bounded number of redirects per call and reports where it
// stopped. Each call is one hop of the caller's unfurl loop.
package unfurler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/platform/logger"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUA        = "utilbot-unfurl"
	defaultAttempts  = 3
	defaultRetryBase = 250 * time.Millisecond
)

// ErrUnreachable means every attempt failed before the worker answered
var ErrUnreachable = errors.New("unfurl worker unreachable")

// Options configures the Client
type Options struct {
	URL       string
	UserAgent string
	Timeout   time.Duration

	// Attempts bounds transport-level tries per hop
	Attempts  int
	RetryBase time.Duration
}

// Outcome is the worker's verdict for one hop
type Outcome uint8

const (
	// Resolved means the chain ended at Destination
	Resolved Outcome = iota + 1
	// Rejected means the worker refused the URL (HTTP 400)
	Rejected
	// DepthLimited means the worker stopped early and Next can be resumed (HTTP 416)
	DepthLimited
	// Broken means the chain has a dead link at Final (HTTP 418)
	Broken
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case Rejected:
		return "rejected"
	case DepthLimited:
		return "depth_limited"
	case Broken:
		return "broken"
	default:
		return "unknown"
	}
}

// Hop is the decoded worker reply
type Hop struct {
	Outcome     Outcome `json:"-"`
	Destination string  `json:"destination"`
	Depth       int     `json:"depth"`
	Final       string  `json:"final"`
	Next        string  `json:"next"`
	Error       string  `json:"error"`
}

// Client talks to the unfurl worker
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClient creates a Client with defaults filled in
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Attempts <= 0 {
		o.Attempts = defaultAttempts
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("unfurler"),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Hop asks the worker to follow url as far as it will go
//
// Transport failures are retried up to Attempts times and then reported as
// ErrUnreachable. Statuses other than 200, 400, 416 and 418 are errors.
func (c *Client) Hop(ctx context.Context, url string) (Hop, error) {
	if c.opts.URL == "" {
		return Hop{}, perr.Unavailablef("unfurl worker url is not configured")
	}
	body, err := json.Marshal(map[string]string{"url": url})
	if err != nil {
		return Hop{}, perr.Wrapf(err, perr.ErrorCodeJSON, "unfurl encode request")
	}

	resp, err := c.post(ctx, body)
	if err != nil {
		return Hop{}, err
	}
	defer drainAndClose(resp.Body)

	var h Hop
	switch resp.StatusCode {
	case http.StatusOK:
		h.Outcome = Resolved
	case http.StatusBadRequest:
		h.Outcome = Rejected
	case http.StatusRequestedRangeNotSatisfiable:
		h.Outcome = DepthLimited
	case http.StatusTeapot:
		h.Outcome = Broken
	default:
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return Hop{}, &StatusError{Status: resp.StatusCode, Body: string(tail)}
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&h); err != nil {
		return Hop{}, perr.Wrapf(err, perr.ErrorCodeJSON, "unfurl decode %s reply", h.Outcome)
	}

	c.log.Debug().
		Str("url", url).
		Str("outcome", h.Outcome.String()).
		Int("depth", h.Depth).
		Msg("unfurl hop")
	return h, nil
}

func (c *Client) post(ctx context.Context, body []byte) (*http.Response, error) {
	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.URL, bytes.NewReader(body))
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "unfurl new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Content-Type", "application/json")

		start := c.now()
		resp, err := c.http.Do(req)
		if err == nil {
			c.log.Debug().Int("status", resp.StatusCode).Dur("latency", c.now().Sub(start)).Msg("unfurl worker response")
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt >= c.opts.Attempts {
			c.log.Warn().Err(err).Int("attempts", attempt).Msg("unfurl worker unreachable")
			return nil, ErrUnreachable
		}
		back := c.backoff(attempt - 1)
		c.log.Warn().Err(err).Dur("retry_in", back).Int("attempt", attempt).Msg("unfurl transport error retrying")
		c.sleep(back)
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	ms := int64(c.opts.RetryBase/time.Millisecond) << uint(attempt)
	max := int64(10 * time.Second / time.Millisecond)
	if ms > max {
		ms = max
	}
	return time.Duration(ms) * time.Millisecond
}
