package solidid

import (
	"fmt"
	"time"

	"github.com/ivan-a-souza/solid-id/internal/encoding"
)

// Status classifies the outcome of parsing an identifier string.
// Checks run in order and stop at the first failure, so a short string
// with bad characters reports StatusInvalidLength, not StatusInvalidFormat.
type Status int

const (
	// StatusOK means the string is a fully valid identifier.
	StatusOK Status = iota

	// StatusInvalidLength means the string is not exactly EncodedLen
	// characters.
	StatusInvalidLength

	// StatusInvalidFormat means a character falls outside 0-9A-Za-z.
	StatusInvalidFormat

	// StatusDecodeError means the codec rejected the string. After the
	// format check this is only reachable for values above 2^128-1
	// (base-62 strings of full width can exceed the 128-bit domain).
	StatusDecodeError

	// StatusInvalidChecksum means the stored checksum does not match the
	// one recomputed from the timestamp and entropy fields.
	StatusInvalidChecksum
)

// String returns a stable lower-snake name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidLength:
		return "invalid_length"
	case StatusInvalidFormat:
		return "invalid_format"
	case StatusDecodeError:
		return "decode_error"
	case StatusInvalidChecksum:
		return "invalid_checksum"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseResult is the structured outcome of Parse. Valid is true only for
// StatusOK. On StatusInvalidChecksum the extracted fields are still
// populated so callers can log what the corrupted string claims to carry;
// for earlier failures they are zero.
type ParseResult struct {
	Status Status
	Valid  bool

	// ID is the decoded identifier. Meaningful for StatusOK and, for
	// diagnostics only, StatusInvalidChecksum.
	ID ID

	// TimestampMs is the creation time as Unix milliseconds
	// (field value plus EpochMs).
	TimestampMs int64

	// Entropy is the 64-bit entropy field.
	Entropy uint64

	// Checksum is the 16-bit checksum stored in the string;
	// WantChecksum is the value recomputed from the other fields.
	// They differ exactly when Status is StatusInvalidChecksum.
	Checksum     uint16
	WantChecksum uint16
}

// Parse decodes and validates an identifier string. It never returns an
// error: any input, including the empty string, yields a ParseResult whose
// Status names the first failing check.
func Parse(s string) ParseResult {
	if len(s) != encoding.EncodedLen {
		return ParseResult{Status: StatusInvalidLength}
	}

	if !encoding.Base62IsValid(s) {
		return ParseResult{Status: StatusInvalidFormat}
	}

	value, err := encoding.Base62Decode(s)
	if err != nil {
		// Only overflow is reachable here; invalid characters were
		// rejected above. Kept as a distinct status rather than
		// panicking so codec and parser can evolve independently.
		return ParseResult{Status: StatusDecodeError}
	}

	id := ID{value: value}
	got := id.Checksum()
	want := checksumOf(id.Timestamp(), id.Entropy())

	result := ParseResult{
		ID:           id,
		TimestampMs:  int64(id.Timestamp()) + EpochMs,
		Entropy:      id.Entropy(),
		Checksum:     got,
		WantChecksum: want,
	}

	if got != want {
		result.Status = StatusInvalidChecksum
		return result
	}

	result.Status = StatusOK
	result.Valid = true
	return result
}

// Validate reports whether s is a fully valid identifier.
func Validate(s string) bool {
	return Parse(s).Valid
}

// ParseID is the strict form of Parse: it returns the identifier or
// ErrInvalidID wrapped with the failing status.
func ParseID(s string) (ID, error) {
	result := Parse(s)
	if !result.Valid {
		return Zero, fmt.Errorf("%w: %s", ErrInvalidID, result.Status)
	}
	return result.ID, nil
}

// MustParse is ParseID panicking on invalid input.
func MustParse(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// TimestampOf extracts the creation time from a valid identifier string.
// Returns ErrInvalidID when the string does not validate.
func TimestampOf(s string) (time.Time, error) {
	result := Parse(s)
	if !result.Valid {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidID, result.Status)
	}
	return time.UnixMilli(result.TimestampMs).UTC(), nil
}
