package solidid

import "errors"

// Sentinel errors, matched with errors.Is.
var (
	// ErrTimestampRange reports a generation-time clock reading outside
	// the 48-bit window relative to EpochMs.
	ErrTimestampRange = errors.New("solidid: timestamp out of range")

	// ErrEntropyUnavailable reports that no entropy source is configured
	// or the configured source failed. Generation cannot proceed without
	// one; there is no degraded fallback.
	ErrEntropyUnavailable = errors.New("solidid: entropy source unavailable")

	// ErrInvalidID reports that a string demanded as a valid identifier
	// failed validation. The wrapped message carries the parse status.
	ErrInvalidID = errors.New("solidid: invalid identifier")
)
