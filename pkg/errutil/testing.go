// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package errutil

import (
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorCode fails t unless err is non-nil and Code(err) equals code,
// e.g. INVALID_LENGTH for a ULID of the wrong size.
func AssertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, Code(err), "error %q carries the wrong code", err)
}

// AssertErrorContext fails t unless err carries the context attribute key
// with value, such as the "position" of a rejected ULID character.
func AssertErrorContext(t *testing.T, err error, key string, value any) {
	t.Helper()
	require.Error(t, err)
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "%T has no attached context", err)
	attrs := oopsErr.Context()
	got, found := attrs[key]
	require.True(t, found, "context %v has no %q attribute", attrs, key)
	assert.Equal(t, value, got, "context attribute %q", key)
}
