package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrOfflineNoCache   = errors.New("origin unreachable and no cached response")
	ErrInstallFailed    = errors.New("shell install failed")
	ErrInvalidAppOrigin = errors.New("invalid app origin")

	ErrSyncIncomplete   = errors.New("some queued requests failed to replay")
	ErrSyncAborted      = errors.New("sync aborted")
	ErrSyncDeferred     = errors.New("origin unreachable, sync deferred until online")
	ErrAuthTokenExpired = errors.New("auth token is expired")

	ErrInvalidNotification = errors.New("invalid notification")

	ErrReadOnlySlot      = errors.New("local state key is read-only")
	ErrInvalidStateKey   = errors.New("invalid local state key")
	ErrInvalidStateValue = errors.New("invalid local state value")
	ErrStateNotFound     = errors.New("local state key not found")
)
