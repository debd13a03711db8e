package solidid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Generator mints identifiers from a clock and an entropy source.
// It holds no mutable state, so a single Generator is safe for concurrent
// use by any number of goroutines without coordination: every call is an
// independent read of the clock and the source.
type Generator struct {
	now     func() time.Time
	entropy io.Reader
}

// NewGenerator returns a Generator backed by the system clock and
// crypto/rand.
func NewGenerator() *Generator {
	return &Generator{
		now:     time.Now,
		entropy: rand.Reader,
	}
}

// NewGeneratorWith returns a Generator with an explicit clock and entropy
// source, for deterministic construction in tests or replay scenarios.
// A nil now falls back to the system clock. A nil entropy source is
// allowed at construction but makes Generate fail with
// ErrEntropyUnavailable.
func NewGeneratorWith(now func() time.Time, entropy io.Reader) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now, entropy: entropy}
}

// Generate mints one identifier. It reads the clock once and consumes
// 8 bytes from the entropy source; those are its only side effects.
func (g *Generator) Generate() (ID, error) {
	entropy, err := g.readEntropy(1)
	if err != nil {
		return Zero, err
	}
	return Make(g.now().UnixMilli(), entropy[0])
}

// Batch mints n identifiers, drawing all entropy from the source in a
// single read. The clock is read per identifier, so a batch spanning a
// millisecond boundary stays in timestamp order.
func (g *Generator) Batch(n int) ([]ID, error) {
	if n <= 0 {
		return nil, nil
	}

	entropy, err := g.readEntropy(n)
	if err != nil {
		return nil, err
	}

	ids := make([]ID, 0, n)
	for i := 0; i < n; i++ {
		id, err := Make(g.now().UnixMilli(), entropy[i])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// readEntropy draws n 64-bit values from the source.
func (g *Generator) readEntropy(n int) ([]uint64, error) {
	if g.entropy == nil {
		return nil, ErrEntropyUnavailable
	}

	buf := make([]byte, 8*n)
	if _, err := io.ReadFull(g.entropy, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	out := make([]uint64, n)
	for i := range out {
		out[i] = binary.BigEndian.Uint64(buf[8*i:])
	}
	return out, nil
}

// defaultGenerator backs the package-level convenience functions.
var defaultGenerator = NewGenerator()

// New mints an identifier using the system clock and crypto/rand.
func New() (ID, error) {
	return defaultGenerator.Generate()
}

// MustNew is New panicking on error. Generation only fails when the
// system entropy source is broken or the clock leaves the 48-bit window.
func MustNew() ID {
	id, err := New()
	if err != nil {
		panic(err)
	}
	return id
}
