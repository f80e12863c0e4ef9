package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitleAndBody  = errors.New("notification needs a title or a body")
	ErrInvalidTargetURL   = errors.New("notification target must be a same-origin path")
	ErrInvalidAction      = errors.New("notification action needs an id and a title")
	ErrEmptyURL           = errors.New("queued request URL is required")
	ErrRelativeURL        = errors.New("queued request URL must be absolute")
	ErrInvalidMethod      = errors.New("queued request method must be POST, PUT, PATCH or DELETE")
	ErrInvalidStateKey    = errors.New("invalid local state key")
	ErrInvalidStateValue  = errors.New("local state value must be valid JSON")
	ErrStateValueTooLarge = errors.New("local state value is too large")
)
