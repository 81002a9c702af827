// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ulid

import "github.com/samber/oops"

// Error codes for rejected input.
const (
	CodeInvalidLength    = "INVALID_LENGTH"
	CodeInvalidCharacter = "INVALID_CHARACTER"
)

// ErrInvalidLength creates an error for input that is not 26 characters long.
func ErrInvalidLength(length int) error {
	return oops.Code(CodeInvalidLength).
		With("length", length).
		Errorf("invalid ULID length %d, expected %d", length, EncodedSize)
}

// ErrInvalidCharacter creates an error for a character outside the alphabet.
func ErrInvalidCharacter(position int, c byte) error {
	return oops.Code(CodeInvalidCharacter).
		With("position", position).
		With("char", string(rune(c))).
		Errorf("invalid ULID character %q at position %d", c, position)
}

func validate[T ~string | ~[]byte](s T) error {
	if len(s) != EncodedSize {
		return ErrInvalidLength(len(s))
	}
	for i := 0; i < EncodedSize; i++ {
		if !decodeTable[s[i]].valid {
			return ErrInvalidCharacter(i, s[i])
		}
	}
	return nil
}
