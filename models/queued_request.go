// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/http"
	"time"
)

// QueuedRequest is a durable record of a mutation that could not be
// delivered to the origin. Records are replayed in insertion order.
type QueuedRequest struct {
	// ID uniquely identifies the record across replays.
	ID string `json:"id"`

	// URL is the target endpoint, absolute.
	URL string `json:"url"`

	// Method is the HTTP method of the original request.
	Method string `json:"method"`

	// Body is the serialized request body.
	Body []byte `json:"body,omitempty"`

	// Headers holds the request headers that must be replayed verbatim.
	Headers http.Header `json:"headers,omitempty"`

	// Auth marks requests that must carry the current bearer token on replay.
	Auth bool `json:"auth,omitempty"`

	// EnqueuedAt is the moment the record was first queued.
	EnqueuedAt time.Time `json:"enqueued_at"`

	// Attempts counts failed replays of the record.
	Attempts int `json:"attempts,omitempty"`
}
