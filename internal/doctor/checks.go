package doctor

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/thoreinstein/namecheck/internal/config"
	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/platform"
	"github.com/thoreinstein/namecheck/internal/probe"
)

// ConfigCheck reports which configuration file is in effect and whether
// it is valid.
type ConfigCheck struct {
	cfg     *config.Config
	file    string
	loadErr error
}

// NewConfigCheck creates a check for cfg as loaded from file. An empty
// file means defaults are in use. A non-nil loadErr fails the check
// regardless of cfg.
func NewConfigCheck(cfg *config.Config, file string, loadErr error) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, file: file, loadErr: loadErr}
}

func (c *ConfigCheck) Name() string     { return "config" }
func (c *ConfigCheck) Category() string { return "config" }

func (c *ConfigCheck) Run(_ context.Context) *CheckResult {
	res := &CheckResult{Name: c.Name(), Category: c.Category()}

	if c.loadErr != nil {
		res.Status = SeverityError
		res.Message = c.loadErr.Error()
		res.Details = map[string]any{"file": c.file}
		res.FixHint = "fix the config file or pass a different one with --config"
		return res
	}

	errs := config.Validate(c.cfg)
	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		res.Status = SeverityError
		res.Message = errors.Join(errs...).Error()
		res.Details = map[string]any{"file": c.file, "errors": msgs}
		res.FixHint = "edit the config file or run: namecheck config list"
		return res
	}

	if c.file == "" {
		res.Status = SeverityInfo
		res.Message = "no config file found, using defaults"
		return res
	}
	res.Status = SeverityPass
	res.Message = "loaded " + c.file
	res.Details = map[string]any{"file": c.file}
	return res
}

// ReachabilityCheck sends a HEAD request to a platform's base URL.
type ReachabilityCheck struct {
	client  *http.Client
	id      platform.ID
	base    string
	timeout time.Duration
}

// NewReachabilityCheck creates a check for one platform. An empty base
// selects the platform's well-known URL.
func NewReachabilityCheck(client *http.Client, id platform.ID, base string, timeout time.Duration) *ReachabilityCheck {
	if base == "" {
		base = id.Spec().BaseURL
	}
	return &ReachabilityCheck{client: client, id: id, base: base, timeout: timeout}
}

func (c *ReachabilityCheck) Name() string     { return string(c.id) }
func (c *ReachabilityCheck) Category() string { return "network" }

func (c *ReachabilityCheck) Run(ctx context.Context) *CheckResult {
	res := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"url": c.base},
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.base, nil)
	if err != nil {
		res.Status = SeverityError
		res.Message = "invalid endpoint: " + err.Error()
		return res
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		res.Status = SeverityWarning
		res.Message = "unreachable (" + probe.ClassifyError(err).Reason() + ")"
		res.FixHint = "checks against " + c.id.Spec().DisplayName + " will report errors"
		return res
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<10))
	_ = resp.Body.Close()

	res.Details["code"] = resp.StatusCode
	res.Details["elapsed"] = elapsed.String()
	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		res.Status = SeverityWarning
		res.Message = "responded " + resp.Status
		return res
	}
	res.Status = SeverityPass
	res.Message = "reachable in " + elapsed.String()
	return res
}
