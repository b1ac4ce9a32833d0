package mallmock

import "errors"

var (
	// ErrRunFailed indicates that a sweep run failed without an injected failure.
	ErrRunFailed = errors.New("mallmock: run failed without an injected failure")

	// ErrOrdinalLimit indicates that a sweep reached SweepOptions.MaxOrdinal
	// before any run completed without an injected failure.
	ErrOrdinalLimit = errors.New("mallmock: ordinal limit reached")

	// ErrFailureMishandled indicates that at least one injected failure was
	// swallowed or leaked memory.
	ErrFailureMishandled = errors.New("mallmock: injected failure mishandled")
)
