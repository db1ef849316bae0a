package errors

import crdb "github.com/cockroachdb/errors"

// New creates an error with a stack trace.
func New(msg string) error { return crdb.New(msg) }

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...any) error { return crdb.Newf(format, args...) }

// Wrap annotates err with msg. It returns nil if err is nil.
func Wrap(err error, msg string) error { return crdb.Wrap(err, msg) }

// Wrapf annotates err with a formatted message. It returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error { return crdb.Wrapf(err, format, args...) }

// AssertionFailedf reports a broken internal invariant.
func AssertionFailedf(format string, args ...any) error {
	return crdb.AssertionFailedf(format, args...)
}

// IsAssertionFailure reports whether err stems from AssertionFailedf.
func IsAssertionFailure(err error) bool { return crdb.IsAssertionFailure(err) }

// Is reports whether any error in err's chain matches target.
func Is(err, reference error) bool { return crdb.Is(err, reference) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return crdb.As(err, target) }

// Join combines errors into one.
func Join(errs ...error) error { return crdb.Join(errs...) }

// Mark makes err match reference under Is without changing its message.
func Mark(err, reference error) error { return crdb.Mark(err, reference) }
