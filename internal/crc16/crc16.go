// Package crc16 implements the CRC-16/CCITT checksum: polynomial 0x1021,
// initial register 0xFFFF, no reflection, no final XOR. The identifier
// format depends on this exact variant bit-for-bit; do not substitute
// another CRC-16 flavor.
package crc16

// Init is the initial register value.
const Init uint16 = 0xFFFF

// poly is the CCITT generator polynomial x^16 + x^12 + x^5 + 1.
const poly uint16 = 0x1021

// table is the 256-entry lookup table keyed by (register high byte XOR
// input byte). Built once at package init, read-only afterwards, so it is
// safe to share across concurrent callers without locking.
var table [256]uint16

func init() {
	for i := 0; i < 256; i++ {
		crc := uint16(i) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
}

// Update feeds data into an in-progress checksum and returns the new
// register value. Start from Init.
func Update(reg uint16, data []byte) uint16 {
	for _, b := range data {
		reg = reg<<8 ^ table[byte(reg>>8)^b]
	}
	return reg
}

// Checksum returns the CRC-16/CCITT of data.
// Pure and deterministic: identical input always yields identical output.
func Checksum(data []byte) uint16 {
	return Update(Init, data)
}
