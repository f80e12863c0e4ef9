package workers

import "errors"

var (
	ErrUnknownTag = errors.New("no task handles this tag")

	errOffline = errors.New("agent is offline")
)
