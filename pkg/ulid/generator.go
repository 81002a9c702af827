// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ulid

import (
	"sync"
	"time"
)

// Clock returns the current wall-clock time.
type Clock func() time.Time

// Generator creates IDs from a clock and a random Source.
// IDs created within the same millisecond are not ordered.
type Generator struct {
	clock  Clock
	source *Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock used for timestamps.
func WithClock(clock Clock) Option {
	return func(g *Generator) { g.clock = clock }
}

// WithSource sets the random source. The default is DefaultSource().
func WithSource(source *Source) Option {
	return func(g *Generator) { g.source = source }
}

// NewGenerator creates a Generator using the system clock and the
// process-wide Source unless overridden by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = time.Now
	}
	if g.source == nil {
		g.source = DefaultSource()
	}
	return g
}

// Source returns the random source backing g.
func (g *Generator) Source() *Source { return g.source }

// New returns an ID with the current timestamp and 80 random bits drawn
// from the source as three 32-bit values packed 4+4+2 bytes.
func (g *Generator) New() ID {
	var id ID
	id.putTimestamp(g.now())

	r := g.source.Uint32()
	id[6] = byte(r >> 24)
	id[7] = byte(r >> 16)
	id[8] = byte(r >> 8)
	id[9] = byte(r)
	r = g.source.Uint32()
	id[10] = byte(r >> 24)
	id[11] = byte(r >> 16)
	id[12] = byte(r >> 8)
	id[13] = byte(r)
	r = g.source.Uint32()
	id[14] = byte(r >> 8)
	id[15] = byte(r)
	return id
}

// NewWithEntropy returns an ID with the current timestamp and entropy copied
// verbatim into its last ten bytes.
func (g *Generator) NewWithEntropy(entropy [EntropySize]byte) ID {
	var id ID
	id.putTimestamp(g.now())
	copy(id[timestampSize:], entropy[:])
	return id
}

func (g *Generator) now() uint64 {
	return uint64(g.clock().UnixMilli()) & maxTimestamp
}

var (
	defaultGenerator     *Generator
	defaultGeneratorOnce sync.Once
)

func generator() *Generator {
	defaultGeneratorOnce.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// New returns a fresh ID from the process-wide generator.
func New() ID {
	return generator().New()
}

// NewWithEntropy returns a fresh ID whose random part is entropy.
// The buffer is copied and not retained.
func NewWithEntropy(entropy [EntropySize]byte) ID {
	return generator().NewWithEntropy(entropy)
}

// NewString returns the text form of a fresh ID.
func NewString() string {
	return New().String()
}

// Generate writes a fresh ID into dst as 26 characters followed by a NUL
// byte, for callers that work with fixed-size C-style buffers.
func Generate(dst *[EncodedSize + 1]byte) {
	Encode((*[EncodedSize]byte)(dst[:EncodedSize]), New())
	dst[EncodedSize] = 0
}
