package config

import (
	"fmt"
	"net/url"

	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/platform"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidTimeout indicates a non-positive timeout.
	ErrInvalidTimeout = errors.New("timeout must be > 0")

	// ErrInvalidLimit indicates a negative or zero limit.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrInvalidPlatform indicates an unrecognized platform name.
	ErrInvalidPlatform = errors.New("invalid platform")

	// ErrInvalidEndpoint indicates a malformed endpoint URL.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Timeout <= 0 {
		errs = append(errs, ErrInvalidTimeout)
	}
	if cfg.MaxConnsPerHost < 0 {
		errs = append(errs, &FieldError{Field: "max_conns_per_host", Value: cfg.MaxConnsPerHost, Err: ErrInvalidLimit})
	}
	if cfg.Delegated.Enabled && cfg.Delegated.Concurrency < 1 {
		errs = append(errs, &FieldError{Field: "delegated.concurrency", Value: cfg.Delegated.Concurrency, Err: ErrInvalidLimit})
	}

	for _, name := range cfg.Platforms {
		if !platform.ValidName(name) {
			errs = append(errs, &PlatformError{Platform: name, Err: ErrInvalidPlatform})
		}
	}

	for name, raw := range cfg.Endpoints {
		if !platform.ValidName(name) {
			errs = append(errs, &PlatformError{Platform: name, Err: ErrInvalidPlatform})
			continue
		}
		if err := validateEndpoint(raw); err != nil {
			errs = append(errs, &FieldError{Field: "endpoints." + name, Value: raw, Err: err})
		}
	}

	return errs
}

// validateEndpoint accepts absolute http(s) URLs without query or fragment.
func validateEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidEndpoint
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidEndpoint
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return ErrInvalidEndpoint
	}
	return nil
}

// PlatformError represents an error for a specific platform.
type PlatformError struct {
	Platform string
	Err      error
}

func (e *PlatformError) Error() string {
	return e.Err.Error() + ": " + e.Platform
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// FieldError represents an error for a specific field value.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + fmt.Sprint(e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
