package translate

import "errors"

// Sentinel errors returned by Provider implementations. Callers match them
// with [errors.Is] to pick distinct upstream-failure responses; none of them
// ever leaves a note mutated.
var (
	// ErrUnavailable is returned when the provider cannot be reached or
	// answers with a non-success status.
	ErrUnavailable = errors.New("translation service unavailable")

	// ErrTimeout is returned when a provider call exceeds its deadline.
	ErrTimeout = errors.New("translation service timeout")

	// ErrMalformedResponse is returned when the provider answers success but
	// the payload cannot be parsed into a translation.
	ErrMalformedResponse = errors.New("failed to parse translation response")
)
