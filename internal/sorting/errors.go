package sorting

import "errors"

// Domain errors for sort runs.
var (
	// ErrCancelled indicates the user aborted the run from the pacing contract.
	ErrCancelled = errors.New("sorting: run cancelled")

	// ErrUnknownAlgorithm indicates an algorithm name that is not in the closed set.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)

// IsCancelled reports whether err is, or wraps, a cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
