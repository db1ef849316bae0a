// Package logging builds the slog loggers used by namecheck.
//
// Terminal output goes through [Handler], a one-line-per-record text
// handler that colors levels on a TTY and masks values under keys that
// look like credentials (tokens, cookies, CSRF values). JSON output uses
// the standard [slog.JSONHandler]. A --log-file receives a JSON copy of
// every record through [MultiHandler]:
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Output: os.Stderr,
//		File:   f,
//	})
//
// Per-request probe logging uses [LevelTrace], one step below Debug.
//
// Commands store their logger on the command context with [NewContext];
// packages fetch it with [FromContext] or accept it as a constructor
// argument, substituting [NewDiscard] when given nil. Tests use [ForTest].
package logging
