// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the sentinel agent and
// the FieldWise application origin.
//
// The primary abstraction is [OriginFetcher], which decouples the service
// layer from the HTTP client. The package ships a resty-based implementation
// ([NewHTTPOriginFetcher]).
//
// Transport failures (DNS, refused connections, timeouts) are reported as
// [ErrNetwork]; replay responses outside 2xx are mapped from their status by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/fieldwise-sentinel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// OriginFetcher sends requests to the origin on behalf of intercepted
// requests and queued replays.
type OriginFetcher interface {
	// Fetch forwards req to its URL and returns whatever the origin answered,
	// whatever the status. The only error is a transport failure, wrapped
	// around [ErrNetwork].
	Fetch(ctx context.Context, req models.Request) (models.Response, error)

	// Replay sends a queued request. A 2xx response returns a nil error; any
	// other status returns the response together with the mapped status error;
	// a transport failure returns [ErrNetwork]. When item.Auth is set the
	// current token is attached as a bearer token.
	Replay(ctx context.Context, item models.QueuedRequest) (models.Response, error)

	// Ping probes the origin's health path. Any HTTP answer means the origin
	// is reachable; only a transport failure is an error.
	Ping(ctx context.Context) error

	// SetToken stores the bearer token attached to authenticated replays.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string
}
