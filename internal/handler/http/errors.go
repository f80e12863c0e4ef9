// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidOrigin is returned by NewHandler when the configured origin
	// is not an absolute URL.
	ErrInvalidOrigin = errors.New("invalid origin")

	// ErrInvalidJSON is reported when a control API request body cannot be
	// decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrBodyTooLarge is reported when a request body exceeds the agent's
	// buffering limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrStreamingUnsupported is reported when the response writer cannot
	// flush, so the event stream cannot be served.
	ErrStreamingUnsupported = errors.New("streaming unsupported")
)
