package encoding

import "fmt"

// MaxUint48 is the largest value representable in 48 bits.
const MaxUint48 = 1<<48 - 1

// PutUint48 stores v into b[0:6] big-endian.
// Panics if v exceeds 48 bits or b is shorter than 6 bytes; both are
// programming errors that never occur on the validated identifier path.
func PutUint48(b []byte, v uint64) {
	if v > MaxUint48 {
		panic(fmt.Sprintf("encoding: value %#x exceeds 48 bits", v))
	}
	_ = b[5]
	b[0] = byte(v >> 40)
	b[1] = byte(v >> 32)
	b[2] = byte(v >> 24)
	b[3] = byte(v >> 16)
	b[4] = byte(v >> 8)
	b[5] = byte(v)
}

// Uint48 reads a big-endian 48-bit value from b[0:6].
func Uint48(b []byte) uint64 {
	_ = b[5]
	return uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
}
