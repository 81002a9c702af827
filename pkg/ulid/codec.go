// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ulid

// Alphabet is Crockford's base32 alphabet: 0-9 and A-Z without I, L, O and U.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// symbol is the decoded value of one text character.
type symbol struct {
	value byte
	valid bool
}

// decodeTable maps every byte to its symbol. Letters decode case-insensitively.
var decodeTable = func() [256]symbol {
	var t [256]symbol
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		t[c] = symbol{value: byte(i), valid: true}
		if c >= 'A' && c <= 'Z' {
			t[c+'a'-'A'] = symbol{value: byte(i), valid: true}
		}
	}
	return t
}()

// Encode writes the 26-character text form of id into dst.
func Encode(dst *[EncodedSize]byte, id ID) {
	// 128 bits fill 26 symbols of 5 bits with the top 2 bits of the first
	// symbol always zero, so byte 0 splits 3+5 and the rest is 3 blocks of 5.
	dst[0] = Alphabet[id[0]>>5&7]
	dst[1] = Alphabet[id[0]&31]

	for blk := 0; blk < 3; blk++ {
		src := id[1+blk*5 : 6+blk*5]
		out := dst[2+blk*8 : 10+blk*8]
		out[0] = Alphabet[src[0]>>3&31]
		out[1] = Alphabet[(src[0]&7)<<2|src[1]>>6]
		out[2] = Alphabet[src[1]>>1&31]
		out[3] = Alphabet[(src[1]&1)<<4|src[2]>>4]
		out[4] = Alphabet[(src[2]&15)<<1|src[3]>>7]
		out[5] = Alphabet[src[3]>>2&31]
		out[6] = Alphabet[(src[3]&3)<<3|src[4]>>5]
		out[7] = Alphabet[src[4]&31]
	}
}

// String returns the canonical uppercase text form.
func (id ID) String() string {
	var buf [EncodedSize]byte
	Encode(&buf, id)
	return string(buf[:])
}

// AppendText appends the text form of id to dst.
func (id ID) AppendText(dst []byte) ([]byte, error) {
	var buf [EncodedSize]byte
	Encode(&buf, id)
	return append(dst, buf[:]...), nil
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return id.AppendText(make([]byte, 0, EncodedSize))
}

// UnmarshalText implements encoding.TextUnmarshaler. Invalid input leaves id untouched.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := parseStrict(text)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Parse decodes a 26-character string. It reports false, and returns the
// zero ID, when the length is wrong or any character is outside the alphabet.
func Parse(s string) (ID, bool) {
	return parse(s)
}

// ParseBytes is Parse for byte slices.
func ParseBytes(b []byte) (ID, bool) {
	return parse(b)
}

// ParseStrict is Parse with a coded error describing why the input was rejected.
func ParseStrict(s string) (ID, error) {
	return parseStrict(s)
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) ID {
	id, err := parseStrict(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Validate reports whether s is a well-formed ID without decoding it.
func Validate(s string) error {
	return validate(s)
}

func parse[T ~string | ~[]byte](s T) (ID, bool) {
	if len(s) != EncodedSize {
		return ID{}, false
	}
	for i := 0; i < EncodedSize; i++ {
		if !decodeTable[s[i]].valid {
			return ID{}, false
		}
	}
	return decode(s), true
}

func parseStrict[T ~string | ~[]byte](s T) (ID, error) {
	if err := validate(s); err != nil {
		return ID{}, err
	}
	return decode(s), nil
}

// decode assumes s has already been validated.
func decode[T ~string | ~[]byte](s T) ID {
	var id ID
	// The first symbol's top two bits fall outside the 128-bit range.
	id[0] = decodeTable[s[0]].value<<5 | decodeTable[s[1]].value

	for blk := 0; blk < 3; blk++ {
		var v [8]byte
		for j := range v {
			v[j] = decodeTable[s[2+blk*8+j]].value
		}
		out := id[1+blk*5 : 6+blk*5]
		out[0] = v[0]<<3 | v[1]>>2
		out[1] = v[1]<<6 | v[2]<<1 | v[3]>>4
		out[2] = v[3]<<4 | v[4]>>1
		out[3] = v[4]<<7 | v[5]<<2 | v[6]>>3
		out[4] = v[6]<<5 | v[7]
	}
	return id
}
