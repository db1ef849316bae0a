package probe

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/logging"
	"github.com/thoreinstein/namecheck/internal/platform"
	"github.com/thoreinstein/namecheck/internal/status"
)

const (
	// DefaultTimeout bounds each probe request.
	DefaultTimeout = 8 * time.Second

	// DefaultUserAgent is sent with every probe request.
	DefaultUserAgent = "namecheck (go net/http)"

	// DefaultMaxConnsPerHost caps concurrent connections to one platform.
	DefaultMaxConnsPerHost = 16

	// DefaultMaxBodyBytes caps how much of a response body is inspected.
	DefaultMaxBodyBytes = 1 << 20

	maxRedirects = 10
)

// Options configures a Prober.
type Options struct {
	// Timeout is the per-request deadline.
	Timeout time.Duration
	// UserAgent is sent in the User-Agent header.
	UserAgent string
	// MaxConnsPerHost limits connections per platform host. Zero means no limit.
	MaxConnsPerHost int
	// MaxBodyBytes limits body reads for platforms classified by content.
	MaxBodyBytes int64
	// Endpoints overrides the base URL of a platform.
	Endpoints map[platform.ID]string
	// Transport replaces the default pooled transport.
	Transport http.RoundTripper
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Timeout:         DefaultTimeout,
		UserAgent:       DefaultUserAgent,
		MaxConnsPerHost: DefaultMaxConnsPerHost,
		MaxBodyBytes:    DefaultMaxBodyBytes,
	}
}

// Prober runs availability probes over a shared HTTP client.
type Prober struct {
	client *http.Client
	opts   Options
	logger *slog.Logger
}

type noFollowKey struct{}

// New creates a Prober. Zero-valued options fall back to their defaults.
func New(opts Options, logger *slog.Logger) *Prober {
	def := DefaultOptions()
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = def.MaxBodyBytes
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}

	transport := opts.Transport
	if transport == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.MaxConnsPerHost = opts.MaxConnsPerHost
		t.MaxIdleConnsPerHost = opts.MaxConnsPerHost
		transport = t
	}

	return &Prober{
		opts:   opts,
		logger: logger,
		client: &http.Client{
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if noFollow, _ := req.Context().Value(noFollowKey{}).(bool); noFollow {
					return http.ErrUseLastResponse
				}
				if len(via) >= maxRedirects {
					return errors.Newf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}
}

// Client returns the shared HTTP client.
func (p *Prober) Client() *http.Client { return p.client }

// Options returns the effective options.
func (p *Prober) Options() Options { return p.opts }

// Probe checks whether username is taken on the platform. It returns
// InvalidFormat without touching the network when the handle is not
// syntactically legal there.
func (p *Prober) Probe(ctx context.Context, id platform.ID, username string) status.Status {
	r, ok := rules[id]
	if !ok {
		return status.Unknown("no-probe")
	}
	if !platform.Valid(id, username) {
		return status.InvalidFormat()
	}

	ctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()
	if !r.follow {
		ctx = context.WithValue(ctx, noFollowKey{}, true)
	}

	target := platform.ProfileURL(id, p.opts.Endpoints[id], username)
	req, err := http.NewRequestWithContext(ctx, r.method, target, nil)
	if err != nil {
		return status.Unknown("request")
	}
	req.Header.Set("User-Agent", p.opts.UserAgent)

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		st := ClassifyError(err)
		p.logger.Log(ctx, logging.LevelTrace, "probe failed",
			"platform", id, "url", target, "reason", st.Reason(), "elapsed", time.Since(start))
		return st
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, p.opts.MaxBodyBytes))
		_ = resp.Body.Close()
	}()

	st := r.classify(resp, strings.ToLower(username), p.opts.MaxBodyBytes)
	p.logger.Log(ctx, logging.LevelTrace, "probe",
		"platform", id, "url", target, "code", resp.StatusCode,
		"final", resp.Request.URL.Path, "status", st.String(), "elapsed", time.Since(start))
	return st
}
