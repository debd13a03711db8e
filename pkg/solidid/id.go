package solidid

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/ivan-a-souza/solid-id/internal/crc16"
	"github.com/ivan-a-souza/solid-id/internal/encoding"
)

// Field widths and positions within the packed 128-bit value.
const (
	timestampBits = 48
	entropyBits   = 64
	checksumBits  = 16

	entropyShift   = checksumBits
	timestampShift = checksumBits + entropyBits

	// MaxTimestamp is the largest representable elapsed-milliseconds
	// value, about 8900 years past the epoch.
	MaxTimestamp = 1<<timestampBits - 1

	// EncodedLen is the length of the text form.
	EncodedLen = encoding.EncodedLen
)

// EpochMs is the reference epoch, 2020-01-01T00:00:00Z, as Unix
// milliseconds. Timestamps are stored relative to it. It is fixed for the
// lifetime of the format: changing it would break chronological text
// ordering across the boundary.
const EpochMs int64 = 1577836800000

// ID is an immutable 128-bit time-sortable identifier.
// The zero value is Zero, which is structurally valid but carries
// timestamp 0 and entropy 0.
type ID struct {
	value encoding.Uint128
}

// Zero is the all-zero identifier.
var Zero ID

// Timestamp returns the 48-bit timestamp field: milliseconds since EpochMs.
func (id ID) Timestamp() uint64 {
	return id.value.Rsh(timestampShift).Lo
}

// Entropy returns the 64-bit entropy field.
func (id ID) Entropy() uint64 {
	return id.value.Rsh(entropyShift).Lo
}

// Checksum returns the stored 16-bit checksum field.
func (id ID) Checksum() uint16 {
	return uint16(id.value.Lo)
}

// Time returns the creation time recorded in the identifier.
func (id ID) Time() time.Time {
	return time.UnixMilli(int64(id.Timestamp()) + EpochMs).UTC()
}

// Age returns how long ago the identifier was created.
func (id ID) Age() time.Duration {
	return time.Since(id.Time())
}

// String returns the canonical 22-character base-62 text form.
func (id ID) String() string {
	return encoding.Base62EncodeFixed(id.value, encoding.EncodedLen)
}

// Compare returns -1, 0, or 1 ordering identifiers by their packed value,
// which orders first by timestamp, then entropy, then checksum.
func (id ID) Compare(other ID) int {
	return id.value.Cmp(other.value)
}

// Less reports whether id sorts before other.
func (id ID) Less(other ID) bool {
	return id.Compare(other) < 0
}

// Equal reports whether the identifiers are identical.
func (id ID) Equal(other ID) bool {
	return id.value == other.value
}

// IsZero reports whether id is the all-zero identifier.
func (id ID) IsZero() bool {
	return id.value.IsZero()
}

// checksumOf computes the CRC-16/CCITT over the big-endian concatenation
// of the 6-byte timestamp and 8-byte entropy. Both the assembler and the
// validator call this single routine so the two can never drift apart.
func checksumOf(timestamp, entropy uint64) uint16 {
	var buf [14]byte
	encoding.PutUint48(buf[0:6], timestamp)
	buf[6] = byte(entropy >> 56)
	buf[7] = byte(entropy >> 48)
	buf[8] = byte(entropy >> 40)
	buf[9] = byte(entropy >> 32)
	buf[10] = byte(entropy >> 24)
	buf[11] = byte(entropy >> 16)
	buf[12] = byte(entropy >> 8)
	buf[13] = byte(entropy)
	return crc16.Checksum(buf[:])
}

// Make assembles an identifier from a wall-clock reading and an entropy
// value. nowMs is Unix milliseconds; entropy is used as-is (callers wanting
// randomness should use a Generator). Returns ErrTimestampRange if nowMs
// falls before the epoch or more than 2^48-1 ms after it. The range is a
// hard boundary: wrapping or clamping would silently corrupt sort order.
func Make(nowMs int64, entropy uint64) (ID, error) {
	elapsed := nowMs - EpochMs
	if elapsed < 0 || elapsed > MaxTimestamp {
		return Zero, fmt.Errorf("%w: %d ms is outside [%d, %d]",
			ErrTimestampRange, nowMs, EpochMs, EpochMs+MaxTimestamp)
	}

	ts := uint64(elapsed) & MaxTimestamp
	crc := checksumOf(ts, entropy)

	packed := encoding.U128(0, ts).Lsh(timestampShift).
		Or(encoding.U128(0, entropy).Lsh(entropyShift)).
		Or(encoding.U128(0, uint64(crc)))

	return ID{value: packed}, nil
}

// MarshalText returns the canonical text form.
// Together with UnmarshalText this makes ID usable directly in JSON, YAML,
// and similar encodings; the 22-character string is the only wire format.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the canonical text form, rejecting anything Parse
// does not consider fully valid.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer, storing the canonical text form.
func (id ID) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan implements sql.Scanner for text and byte columns.
func (id *ID) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*id = Zero
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("solidid: cannot scan %T into ID", value)
	}
}
