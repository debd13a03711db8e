// Package solidid generates and validates compact, time-sortable unique
// identifiers.
//
// # Format
//
// An identifier is an unsigned 128-bit value with three big-endian fields:
//
//	[48 bits timestamp][64 bits entropy][16 bits checksum]
//
// The timestamp is milliseconds since 2020-01-01T00:00:00Z, the entropy is
// cryptographically random, and the checksum is CRC-16/CCITT over the
// 14-byte concatenation of the timestamp (6 bytes) and entropy (8 bytes).
// The packed value renders as exactly 22 base-62 characters from the
// alphabet 0-9, A-Z, a-z. Because that alphabet is in ASCII order and the
// width is fixed, identifiers sort as plain text in creation order.
//
// # Validity
//
// Parse never fails: it returns a ParseResult whose Status pinpoints the
// first failing check (length, alphabet, decode, checksum). The checksum
// detects corruption, it does not correct it; a random mutation slips
// through with probability about 1/65536.
//
// Uniqueness is statistical, not guaranteed: two identifiers minted in the
// same millisecond collide only if their 64 random bits collide.
//
// Usage
//
//	id, err := solidid.New()
//	s := id.String()              // 22-character text form
//	res := solidid.Parse(s)       // structured validation
//	ok := solidid.Validate(s)     // convenience boolean
package solidid
