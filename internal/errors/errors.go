package errors

import (
	"fmt"
	"io"

	crdb "github.com/cockroachdb/errors"
)

// Process exit codes.
const (
	ExitSuccess = 0
	// ExitUser covers bad input, bad configuration and rejected handles.
	ExitUser = 1
	// ExitSystem covers I/O and network failures.
	ExitSystem = 2
	// ExitInterrupted is 128+SIGINT, returned when a run is cancelled.
	ExitInterrupted = 130
)

var (
	// ErrNotFound marks a missing file or resource.
	ErrNotFound = crdb.New("resource not found")

	// ErrInvalidConfig marks configuration that failed validation.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrUnknownPlatform marks a platform name outside the supported set.
	ErrUnknownPlatform = crdb.New("unknown platform")
)

// ExitError carries the exit code and an optional hint for the user
// alongside the error that ends a command.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// NewExitError returns an ExitError with no suggestion.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError returns an ExitError with ExitUser.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError returns an ExitError with ExitSystem.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError returns a user error pointing at namecheck doctor.
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Run: namecheck doctor")
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Report writes err and any suggestion to w and returns the exit code for
// it. Errors that are not an ExitError exit with ExitUser; nil exits with
// ExitSuccess.
func Report(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !As(err, &exitErr) {
		fmt.Fprintf(w, "error: %v\n", err)
		return ExitUser
	}
	if exitErr.Err != nil {
		fmt.Fprintf(w, "error: %v\n", exitErr.Err)
	}
	if exitErr.Suggestion != "" {
		fmt.Fprintf(w, "  %s\n", exitErr.Suggestion)
	}
	return exitErr.Code
}
