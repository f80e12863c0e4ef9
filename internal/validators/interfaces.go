// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the untrusted input the agent accepts from the
// page and from durable state: push payloads posted to the control API,
// queued requests read back from the queue slot and local state writes.
//
// Services receive a Validator by injection and call it before any input
// reaches the broadcaster or the store. A failed check wraps one of the
// sentinel errors in errors.go, so callers branch with errors.Is.
package validators

import "context"

// Validator checks one value. Passing field names restricts the check to
// those fields; no names means every field is checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
