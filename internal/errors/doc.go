// Package errors is the single errors import for namecheck.
//
// Construction, wrapping and inspection are thin wrappers over
// [github.com/cockroachdb/errors], so every error carries a stack trace
// and sentinels survive wrapping:
//
//	return errors.Wrapf(errors.ErrUnknownPlatform, "%q", name)
//
// Commands return an [ExitError] to choose the process exit code; main
// hands whatever comes back to [Report]:
//
//	os.Exit(errors.Report(os.Stderr, err))
package errors
