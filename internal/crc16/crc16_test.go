package crc16

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum_KnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected uint16
	}{
		{"empty", nil, 0xFFFF},
		{"check string", []byte("123456789"), 0x29B1},
		{"single zero", []byte{0x00}, 0xE1F0},
		{"single 0xFF", []byte{0xFF}, 0xFF00},
		{"fourteen zero bytes", make([]byte, 14), 0xA96A},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Checksum(tc.input))
		})
	}
}

func TestChecksum_Deterministic(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}
	first := Checksum(data)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Checksum(data))
	}
}

func TestUpdate_Incremental(t *testing.T) {
	data := []byte("incremental feeding must match one-shot")
	reg := Init
	for _, b := range data {
		reg = Update(reg, []byte{b})
	}
	assert.Equal(t, Checksum(data), reg)
}

func TestChecksum_DetectsSingleByteCorruption(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E}
	want := Checksum(data)

	for i := range data {
		mutated := append([]byte(nil), data...)
		mutated[i] ^= 0x55
		assert.NotEqual(t, want, Checksum(mutated), "corruption at byte %d went undetected", i)
	}
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, 14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Checksum(data)
	}
}
