// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package ulid generates and parses Universally Unique Lexicographically
// Sortable Identifiers.
//
// # Format
//
// An ID is 16 bytes: a 48-bit big-endian millisecond timestamp followed by
// 80 bits of randomness. Its text form is 26 characters of Crockford base32
// (0-9, A-Z without I, L, O and U) that sort the same way as the bytes.
//
// # Randomness
//
// Randomness comes from a process-wide xorshift64* source shared by all
// goroutines through a compare-and-swap loop, or from a caller supplied
// 10-byte buffer. Neither is cryptographically secure, and IDs created in the
// same millisecond are not ordered relative to each other.
//
// Usage
//
//	id := ulid.New()
//	s := id.String()            // "01GFBZE3YBBJX1DVTM13EXZ2X6"
//	parsed, ok := ulid.Parse(s) // case-insensitive
package ulid
