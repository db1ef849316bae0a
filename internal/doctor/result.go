// Package doctor provides diagnostic checks for namecheck: configuration
// validity and reachability of every enabled platform.
package doctor

import "time"

// Severity grades a check result. Warnings make namecheck doctor exit 1,
// errors exit 2.
type Severity int

const (
	SeverityPass Severity = iota
	SeverityInfo
	// SeverityWarning is a degraded but usable state, such as a platform
	// answering 5xx.
	SeverityWarning
	// SeverityError means checks cannot run as configured.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityPass:
		return "pass"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CheckResult is the outcome of one check.
type CheckResult struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Status   Severity `json:"status"`
	Message  string   `json:"message"`

	// Details holds check-specific context such as the probed URL.
	Details map[string]any `json:"details,omitempty"`

	// FixHint tells the user what to change.
	FixHint string `json:"fix_hint,omitempty"`

	// Elapsed is filled in by the Runner.
	Elapsed time.Duration `json:"elapsed_ns"`
}

// Summary counts results by severity.
type Summary struct {
	Passed   int `json:"passed"`
	Info     int `json:"info"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

func (s *Summary) add(sev Severity) {
	switch sev {
	case SeverityPass:
		s.Passed++
	case SeverityInfo:
		s.Info++
	case SeverityWarning:
		s.Warnings++
	default:
		s.Errors++
	}
}
