package encoding

import (
	"errors"
	"fmt"
)

// Base-62 encoding constants.
//
// The alphabet order 0-9, A-Z, a-z is load-bearing: it matches ASCII order,
// so for equal-length encoded strings plain string comparison orders the
// same way as the underlying numeric values. That property is what makes
// timestamp-prefixed identifiers sort chronologically as text.
const (
	Base62     = 62
	Alphabet62 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// EncodedLen is the fixed width of an encoded 128-bit value:
	// 62^22 > 2^128 > 62^21, so 22 digits always suffice.
	EncodedLen = 22
)

// Common errors for base-62 operations.
var (
	ErrInvalidChar = errors.New("invalid character in base62 string")
	ErrOverflow    = errors.New("base62 value overflows 128 bits")
)

// base62Dec maps an input byte to its digit value, or 0xFF for bytes
// outside the alphabet. Built once at init, read-only afterwards.
var base62Dec [256]byte

func init() {
	for i := range base62Dec {
		base62Dec[i] = 0xFF
	}
	for i := 0; i < len(Alphabet62); i++ {
		base62Dec[Alphabet62[i]] = byte(i)
	}
}

// Base62EncodeFixed encodes a 128-bit value as exactly n base-62 digits,
// left-padded with the zero symbol '0'. Zero encodes to n zero symbols.
// Panics if the value does not fit in n digits; callers encoding 128-bit
// identifiers always pass EncodedLen, which fits any value.
func Base62EncodeFixed(v Uint128, n int) string {
	buf := make([]byte, n)
	pos := n

	for !v.IsZero() {
		if pos == 0 {
			panic(fmt.Sprintf("encoding: base62 value needs more than %d digits", n))
		}
		var rem uint64
		v, rem = v.quoRem(Base62)
		pos--
		buf[pos] = Alphabet62[rem]
	}

	for pos > 0 {
		pos--
		buf[pos] = Alphabet62[0]
	}

	return string(buf)
}

// Base62Decode decodes a base-62 string to a 128-bit value.
// Returns ErrInvalidChar (wrapped with the offending character and its
// position) for any byte outside the alphabet, and ErrOverflow if the
// value exceeds 128 bits. Length policy is the caller's: any
// non-overflowing string decodes, including the empty string (zero).
func Base62Decode(s string) (Uint128, error) {
	var v Uint128

	for i := 0; i < len(s); i++ {
		digit := base62Dec[s[i]]
		if digit == 0xFF {
			return Uint128{}, fmt.Errorf("%w: %q at position %d", ErrInvalidChar, s[i], i)
		}

		next, overflow := v.mulAdd(Base62, uint64(digit))
		if overflow {
			return Uint128{}, ErrOverflow
		}
		v = next
	}

	return v, nil
}

// Base62IsValid reports whether every byte of s is in the alphabet.
// It does not check length or overflow.
func Base62IsValid(s string) bool {
	for i := 0; i < len(s); i++ {
		if base62Dec[s[i]] == 0xFF {
			return false
		}
	}
	return true
}
