// Package paste uploads text to a hastebin-style paste service
package paste

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/FFlyyy/bot/internal/platform/config"
	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/platform/logger"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUA        = "utilbot-paste"
	defaultAttempts  = 3
	defaultRetryBase = 250 * time.Millisecond
)

// ErrUploadFailed means every attempt ended without a paste key
var ErrUploadFailed = errors.New("paste upload failed")

// Options configures the Client
type Options struct {
	// URLTemplate contains a {key} placeholder, e.g. https://paste.example.com/{key}
	URLTemplate string
	UserAgent   string
	Timeout     time.Duration
	Attempts    int
	RetryBase   time.Duration
}

// FromConfig reads PASTE_* from root
func FromConfig(root config.Conf) Options {
	c := root.Prefix("PASTE_")
	return Options{
		URLTemplate: c.MayString("URL_TEMPLATE", ""),
		UserAgent:   c.MayString("USER_AGENT", defaultUA),
		Timeout:     c.MayDuration("TIMEOUT", defaultTimeout),
		Attempts:    c.MayInt("ATTEMPTS", defaultAttempts),
	}
}

// Client uploads documents
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
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
		log:   *logger.Named("paste"),
		sleep: time.Sleep,
	}
}

type reply struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// Upload stores contents and returns a link to it
//
// extension is appended to the link. Links to anything other than python
// sources get ?noredirect so the service shows the raw document.
func (c *Client) Upload(ctx context.Context, contents, extension string) (string, error) {
	if c.opts.URLTemplate == "" {
		return "", perr.Unavailablef("paste service url is not configured")
	}
	if extension != "" {
		extension = "." + strings.TrimPrefix(extension, ".")
	}
	endpoint := c.link("documents")

	c.log.Debug().Int("bytes", len(contents)).Msg("sending contents to paste service")
	for attempt := 1; attempt <= c.opts.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		key, err := c.try(ctx, endpoint, contents)
		if err == nil {
			c.log.Info().Str("key", key).Msg("uploaded contents to paste service")
			link := c.link(key) + extension
			if extension == ".py" {
				return link, nil
			}
			return link + "?noredirect", nil
		}
		c.log.Warn().Err(err).Int("attempt", attempt).Int("attempts", c.opts.Attempts).Msg("paste upload failed, trying again")
		if attempt < c.opts.Attempts {
			c.sleep(c.opts.RetryBase << uint(attempt-1))
		}
	}
	return "", ErrUploadFailed
}

func (c *Client) try(ctx context.Context, endpoint, contents string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(contents))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "paste new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "paste do failed")
	}
	defer resp.Body.Close()

	var r reply
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&r); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "paste decode reply status %d", resp.StatusCode)
	}
	switch {
	case r.Message != "":
		return "", perr.Newf(perr.ErrorCodeUnavailable, "paste service error %q status %d", r.Message, resp.StatusCode)
	case r.Key != "":
		return r.Key, nil
	default:
		return "", perr.Newf(perr.ErrorCodeUnknown, "paste service unexpected reply status %d", resp.StatusCode)
	}
}

func (c *Client) link(key string) string {
	return strings.ReplaceAll(c.opts.URLTemplate, "{key}", key)
}
