// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ulid

import oklog "github.com/oklog/ulid/v2"

// Oklog converts id to the github.com/oklog/ulid/v2 type. Both share the
// same 16-byte layout, so the conversion is a plain copy.
func (id ID) Oklog() oklog.ULID {
	return oklog.ULID(id)
}

// FromOklog converts a github.com/oklog/ulid/v2 value to an ID.
func FromOklog(u oklog.ULID) ID {
	return ID(u)
}
