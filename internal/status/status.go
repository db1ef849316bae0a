package status

import (
	"strconv"
	"time"

	"github.com/thoreinstein/namecheck/internal/platform"
)

// Kind is the classification of a Status.
type Kind int

const (
	// KindNone is the kind of the zero Status, which no check produces.
	KindNone Kind = iota
	KindAvailable
	KindTaken
	KindInvalidFormat
	KindError
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAvailable:
		return "available"
	case KindTaken:
		return "taken"
	case KindInvalidFormat:
		return "invalid_format"
	case KindError:
		return "error"
	case KindNone:
		return "none"
	default:
		return "unknown"
	}
}

// Reason tag prefixes.
const (
	ReasonTimeout   = "timeout"
	ReasonNoResult  = "no-result"
	PrefixNetwork   = "network:"
	PrefixUnknown   = "unknown:"
	PrefixStatus    = "status:"
	PrefixTaskFail  = "task-fail:"
	PrefixSubsystem = "sfailed:"
)

// Status is an availability classification. The zero value is not a
// valid result; see IsZero.
type Status struct {
	kind   Kind
	reason string
}

func Available() Status     { return Status{kind: KindAvailable} }
func Taken() Status         { return Status{kind: KindTaken} }
func InvalidFormat() Status { return Status{kind: KindInvalidFormat} }

// Error returns an Error status carrying reason verbatim.
func Error(reason string) Status { return Status{kind: KindError, reason: reason} }

func Timeout() Status                     { return Error(ReasonTimeout) }
func NoResult() Status                    { return Error(ReasonNoResult) }
func Network(cause string) Status         { return Error(PrefixNetwork + cause) }
func Unknown(cause string) Status         { return Error(PrefixUnknown + cause) }
func HTTPStatus(code int) Status          { return Error(PrefixStatus + strconv.Itoa(code)) }
func TaskFail(cause string) Status        { return Error(PrefixTaskFail + cause) }
func SubsystemFailed(cause string) Status { return Error(PrefixSubsystem + cause) }

// Kind returns the classification.
func (s Status) Kind() Kind { return s.kind }

// Reason returns the reason tag of an Error status, empty otherwise.
func (s Status) Reason() string { return s.reason }

// IsZero reports whether s is the zero Status, i.e. no check filled it.
func (s Status) IsZero() bool { return s.kind == KindNone }

// IsError reports whether s is an Error status.
func (s Status) IsError() bool { return s.kind == KindError }

// String renders the status for display.
func (s Status) String() string {
	switch s.kind {
	case KindAvailable:
		return "Available"
	case KindTaken:
		return "Taken"
	case KindInvalidFormat:
		return "Invalid Format"
	case KindNone:
		return "Unset"
	default:
		return "Error (" + s.reason + ")"
	}
}

// MarshalText encodes the display form, so statuses read naturally in
// JSON and YAML reports.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome is the status produced for one scheduled (platform, username) pair.
type Outcome struct {
	Platform platform.ID `json:"platform" yaml:"platform"`
	Username string      `json:"username" yaml:"username"`
	Status   Status      `json:"status" yaml:"status"`
}

// Batch is the set of outcomes produced by one phase of a run.
type Batch struct {
	// Name identifies the phase ("custom" or "delegated").
	Name     string
	Outcomes []Outcome
	Duration time.Duration
}
