// Package check runs one availability check for a list of handles.
//
// A run has two sequential phases: the delegated batch lookup, then the
// concurrent custom probes. Their outcomes are merged into one
// aggregate.Table. Cancelling the context aborts the run between or
// during phases; partial results are discarded and ErrCancelled is
// returned.
package check
