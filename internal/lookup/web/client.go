package web

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/errgroup"

	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/logging"
	"github.com/thoreinstein/namecheck/internal/lookup"
	"github.com/thoreinstein/namecheck/internal/platform"
	"github.com/thoreinstein/namecheck/internal/probe"
)

const (
	// DefaultConcurrency bounds in-flight requests per Query call.
	DefaultConcurrency = 4

	maxBodyBytes = 256 << 10
)

// Default API bases.
var defaultEndpoints = map[platform.ID]string{
	platform.Twitter:   "https://api.twitter.com",
	platform.Instagram: "https://www.instagram.com",
	platform.Reddit:    "https://www.reddit.com",
}

// Options configures a Client.
type Options struct {
	Timeout     time.Duration
	UserAgent   string
	Concurrency int
	// Endpoints overrides the API base of a platform.
	Endpoints map[platform.ID]string
	Transport http.RoundTripper
}

// Client queries the delegated platforms over HTTP.
type Client struct {
	opts   Options
	logger *slog.Logger
}

var _ lookup.Batcher = (*Client)(nil)

// New creates a Client. Zero-valued options fall back to defaults.
func New(opts Options, logger *slog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = probe.DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = probe.DefaultUserAgent
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Transport == nil {
		opts.Transport = http.DefaultTransport
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Client{opts: opts, logger: logger}
}

func (c *Client) endpoint(id platform.ID) string {
	if base, ok := c.opts.Endpoints[id]; ok && base != "" {
		return base
	}
	return defaultEndpoints[id]
}

// session is the per-Query state shared by the requests of one batch.
type session struct {
	*Client
	http *http.Client
	csrf string
}

// Query checks every username on every platform. It fails only when the
// batch as a whole cannot proceed; per-pair failures become records with
// an unknown availability.
func (c *Client) Query(ctx context.Context, usernames []string, platforms []platform.ID) ([]lookup.Record, error) {
	for _, id := range platforms {
		if _, ok := checkers[id]; !ok {
			return nil, errors.Wrapf(errors.ErrUnknownPlatform, "web lookup does not support %s", id)
		}
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "creating cookie jar")
	}
	s := &session{
		Client: c,
		http:   &http.Client{Transport: c.opts.Transport, Jar: jar},
	}

	for _, id := range platforms {
		if id == platform.Instagram {
			if err := s.bootstrapInstagram(ctx); err != nil {
				return nil, errors.Wrap(err, "instagram session")
			}
		}
	}

	records := make([]lookup.Record, len(platforms)*len(usernames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)
	for i, id := range platforms {
		check := checkers[id]
		for j, u := range usernames {
			slot := i*len(usernames) + j
			g.Go(func() error {
				records[slot] = check(gctx, s, u)
				records[slot].Query = u
				records[slot].Platform = id
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "web lookup")
	}
	return records, nil
}

// do sends req with the shared headers and a per-request deadline, and
// hands the response to fn.
func (s *session) do(ctx context.Context, req *http.Request, fn func(*http.Response) lookup.Record) lookup.Record {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()
	req = req.WithContext(ctx)
	req.Header.Set("User-Agent", s.opts.UserAgent)

	start := time.Now()
	resp, err := s.http.Do(req)
	if err != nil {
		reason := probe.ClassifyError(err).Reason()
		s.logger.Debug("lookup request failed", "url", req.URL.String(), "reason", reason)
		return lookup.Record{Message: reason}
	}
	defer resp.Body.Close()

	s.logger.Log(ctx, logging.LevelTrace, "lookup request",
		"url", req.URL.String(), "code", resp.StatusCode, "elapsed", time.Since(start))
	return fn(resp)
}

func unknown(msg string) lookup.Record { return lookup.Record{Message: msg} }

func known(available bool) lookup.Record { return lookup.Record{Available: &available} }
