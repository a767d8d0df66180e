// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads and identifiers before the
// service layer acts on them.
//
// A failed check returns FieldErrors, a map from JSON field name to message.
// It matches ErrValidation with errors.Is, and the HTTP layer renders it as
// the details object of a 400 response.
package validators

import "context"

// Validator checks value. Passing field names limits the check to those
// fields, otherwise every field the value type knows is checked. Values of an
// unsupported type yield ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
