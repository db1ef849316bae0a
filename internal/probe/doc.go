// Package probe implements the per-platform availability probes.
//
// A Prober owns one http.Client that is safe for concurrent use by every
// scheduled probe. Each probe validates the handle, issues exactly one
// request with a fixed deadline and classifies the response into a
// status.Status. Probes never return Go errors: every failure becomes an
// Error status via ClassifyError.
//
// Redirect handling is per platform. GitHub is probed without following
// redirects (any non-404 response, including a redirect, means the
// profile exists); the other platforms follow redirects and inspect the
// final URL or body.
package probe
