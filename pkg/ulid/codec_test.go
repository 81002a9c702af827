// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ulid_test

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/ulidkit/pkg/errutil"
	"github.com/holomush/ulidkit/pkg/ulid"
)

const knownULID = "01GFBZE3YBBJX1DVTM13EXZ2X6"

func knownBytes(t *testing.T) ulid.ID {
	t.Helper()
	b, err := hex.DecodeString("0183D7F70FCB5CBA16EF5408DDDF8BA6")
	require.NoError(t, err)
	var id ulid.ID
	copy(id[:], b)
	return id
}

func TestParse_KnownVector(t *testing.T) {
	id, ok := ulid.Parse(knownULID)
	require.True(t, ok)
	assert.Equal(t, knownBytes(t), id)
	assert.Equal(t, knownULID, id.String())
	assert.Equal(t, uint64(1665775636427), id.Timestamp())
}

func TestEncode_Extremes(t *testing.T) {
	assert.Equal(t, "00000000000000000000000000", ulid.Zero.String())

	var maxID ulid.ID
	for i := range maxID {
		maxID[i] = 0xFF
	}
	assert.Equal(t, "7ZZZZZZZZZZZZZZZZZZZZZZZZZ", maxID.String())
}

func TestEncode_FixedBuffer(t *testing.T) {
	var buf [ulid.EncodedSize]byte
	ulid.Encode(&buf, knownBytes(t))
	assert.Equal(t, knownULID, string(buf[:]))
}

func TestParse_CaseInsensitive(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lowercase", "01b3eaf48p97mf8x1anx1bma6x"},
		{"mixed case", "01b3eaF48P97MF8X1anx1bma6x"},
		{"uppercase", "01B3EAF48P97MF8X1ANX1BMA6X"},
	}

	want := ulid.MustParse("01B3EAF48P97MF8X1ANX1BMA6X")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ulid.Parse(tt.input)
			require.True(t, ok)
			assert.Equal(t, want, id)
			assert.Equal(t, strings.ToUpper(tt.input), id.String())
		})
	}
}

func TestParse_RejectsLength(t *testing.T) {
	for _, n := range []int{0, 1, 14, 25, 27, 30, 100} {
		s := strings.Repeat("0", n)
		_, ok := ulid.Parse(s)
		assert.False(t, ok, "length %d should not parse", n)

		_, err := ulid.ParseStrict(s)
		errutil.AssertErrorCode(t, err, ulid.CodeInvalidLength)
		errutil.AssertErrorContext(t, err, "length", n)
	}
}

func TestParse_RejectsCharacters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		position int
	}{
		{"excluded L", "01B3EAF48P97LF8X1ANX1BMA6X", 12},
		{"excluded I", "I1B3EAF48P97MF8X1ANX1BMA6X", 0},
		{"excluded o lowercase", "01B3EAF48P97MF8X1ANX1BMA6o", 25},
		{"excluded u lowercase", "01B3EAF48u97MF8X1ANX1BMA6X", 9},
		{"hyphen", "01B3EAF48P97-F8X1ANX1BMA6X", 12},
		{"space", "01B3EAF48P97MF8X1ANX1BMA6 ", 25},
		{"non-ascii", "01B3EAF48P97MF8X1ANX1BMA\xff6", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ulid.Parse(tt.input)
			assert.False(t, ok)
			assert.True(t, id.IsZero(), "rejected input must not yield a partial value")

			_, ok = ulid.ParseBytes([]byte(tt.input))
			assert.False(t, ok)

			err := ulid.Validate(tt.input)
			errutil.AssertErrorCode(t, err, ulid.CodeInvalidCharacter)
			errutil.AssertErrorContext(t, err, "position", tt.position)
		})
	}
}

func TestParse_EveryExcludedLetter(t *testing.T) {
	for _, c := range "ILOUilou" {
		s := knownULID[:10] + string(c) + knownULID[11:]
		_, ok := ulid.Parse(s)
		assert.False(t, ok, "%q should be rejected", c)
	}
}

func TestParse_FirstCharacterOverflow(t *testing.T) {
	// Only the low 3 bits of the first symbol fit in 128 bits.
	high := ulid.MustParse("8ZZZZZZZZZZZZZZZZZZZZZZZZZ")
	low := ulid.MustParse("0ZZZZZZZZZZZZZZZZZZZZZZZZZ")
	assert.Equal(t, low, high)
	assert.Equal(t, "0ZZZZZZZZZZZZZZZZZZZZZZZZZ", high.String())
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { ulid.MustParse("not-a-ulid") })
}

func TestText_RoundTrip(t *testing.T) {
	type payload struct {
		ID ulid.ID `json:"id"`
	}

	data, err := json.Marshal(payload{ID: knownBytes(t)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+knownULID+`"}`, string(data))

	var got payload
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, knownBytes(t), got.ID)

	err = json.Unmarshal([]byte(`{"id":"01GFBZE3YBBJX1DVTM13EXZ2XL"}`), &got)
	require.Error(t, err)
	assert.Equal(t, knownBytes(t), got.ID, "failed unmarshal must leave the value untouched")
}

func TestAppendText(t *testing.T) {
	out, err := knownBytes(t).AppendText([]byte("id="))
	require.NoError(t, err)
	assert.Equal(t, "id="+knownULID, string(out))
}
