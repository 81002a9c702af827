// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ulid

import (
	"bytes"
	"time"
)

const (
	// Size is the length of an ID in bytes.
	Size = 16
	// EncodedSize is the length of the text form of an ID.
	EncodedSize = 26
	// EntropySize is the length of the random part of an ID in bytes.
	EntropySize = 10

	timestampSize = Size - EntropySize
	maxTimestamp  = 1<<48 - 1
)

// ID is a 128-bit identifier: [6 bytes ms timestamp][10 bytes entropy].
type ID [Size]byte

// Zero is the ID with every byte set to zero.
var Zero ID

// Timestamp returns the millisecond Unix timestamp stored in the first six bytes.
func (id ID) Timestamp() uint64 {
	return uint64(id[0])<<40 | uint64(id[1])<<32 | uint64(id[2])<<24 |
		uint64(id[3])<<16 | uint64(id[4])<<8 | uint64(id[5])
}

// Time returns the timestamp as a UTC time.Time.
func (id ID) Time() time.Time {
	return time.UnixMilli(int64(id.Timestamp())).UTC()
}

// Entropy returns a copy of the ten random bytes.
func (id ID) Entropy() [EntropySize]byte {
	var e [EntropySize]byte
	copy(e[:], id[timestampSize:])
	return e
}

// Bytes returns a copy of the raw 16 bytes.
func (id ID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, id[:])
	return b
}

// IsZero reports whether every byte of the ID is zero.
func (id ID) IsZero() bool { return id == Zero }

// Compare returns -1, 0 or 1. Byte order and string order agree.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// putTimestamp writes the low 48 bits of ms into the first six bytes.
// Higher bits are dropped, which only matters past the year 10889.
func (id *ID) putTimestamp(ms uint64) {
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)
}
