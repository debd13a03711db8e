// Package encoding provides low-level encoding utilities with no dependencies.
// This is the foundational package for identifier encoding used throughout
// solid-id: 128-bit arithmetic, the fixed-length base-62 codec, and
// big-endian byte packing for checksum input.
package encoding

import "math/bits"

// Uint128 is an unsigned 128-bit integer as two 64-bit words.
// The zero value is the number zero. All operations are value-based
// and allocation-free.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// U128 builds a Uint128 from high and low words.
func U128(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// IsZero reports whether v == 0.
func (v Uint128) IsZero() bool {
	return v.Hi == 0 && v.Lo == 0
}

// Cmp returns -1, 0, or 1 depending on whether v is less than, equal to,
// or greater than other.
func (v Uint128) Cmp(other Uint128) int {
	switch {
	case v.Hi < other.Hi:
		return -1
	case v.Hi > other.Hi:
		return 1
	case v.Lo < other.Lo:
		return -1
	case v.Lo > other.Lo:
		return 1
	}
	return 0
}

// Or returns v | other.
func (v Uint128) Or(other Uint128) Uint128 {
	return Uint128{Hi: v.Hi | other.Hi, Lo: v.Lo | other.Lo}
}

// Lsh returns v << n. Shifts of 128 or more yield zero.
func (v Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: v.Lo << (n - 64)}
	case n == 0:
		return v
	}
	return Uint128{
		Hi: v.Hi<<n | v.Lo>>(64-n),
		Lo: v.Lo << n,
	}
}

// Rsh returns v >> n. Shifts of 128 or more yield zero.
func (v Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: v.Hi >> (n - 64)}
	case n == 0:
		return v
	}
	return Uint128{
		Hi: v.Hi >> n,
		Lo: v.Lo>>n | v.Hi<<(64-n),
	}
}

// quoRem returns (v / d, v % d) for a small divisor d.
// d must be non-zero; the validated callers only pass the radix.
func (v Uint128) quoRem(d uint64) (Uint128, uint64) {
	qHi := v.Hi / d
	rem := v.Hi % d
	qLo, rem := bits.Div64(rem, v.Lo, d)
	return Uint128{Hi: qHi, Lo: qLo}, rem
}

// mulAdd returns v*m + a and whether the result overflowed 128 bits.
func (v Uint128) mulAdd(m, a uint64) (Uint128, bool) {
	loHi, loLo := bits.Mul64(v.Lo, m)
	hiHi, hiLo := bits.Mul64(v.Hi, m)

	lo, carry := bits.Add64(loLo, a, 0)
	hi, carry := bits.Add64(loHi, hiLo, carry)

	return Uint128{Hi: hi, Lo: lo}, hiHi != 0 || carry != 0
}
