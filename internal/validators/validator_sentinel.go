package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/fieldwise-sentinel/models"
)

const (
	FieldTitle   = "title"
	FieldBody    = "body"
	FieldURL     = "url"
	FieldActions = "actions"
	FieldMethod  = "method"
	FieldKey     = "key"
	FieldValue   = "value"
)

const (
	// MaxStateKeyLength bounds local state keys.
	MaxStateKeyLength = 256
	// MaxStateValueSize bounds one local state value.
	MaxStateValueSize = 1 << 20
)

// LocalStateEntry is one key/value write of the UI's local state.
type LocalStateEntry struct {
	Key   string
	Value json.RawMessage
}

type SentinelValidator struct {
}

// NewSentinelValidator returns the validator for push payloads, queued
// requests and local state writes.
func NewSentinelValidator() Validator {
	return &SentinelValidator{}
}

func (v *SentinelValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PushPayload:
		return v.validatePushPayload(ctx, value, fields...)
	case *models.PushPayload:
		return v.validatePushPayload(ctx, *value, fields...)

	case models.QueuedRequest:
		return v.validateQueuedRequest(ctx, value, fields...)
	case *models.QueuedRequest:
		return v.validateQueuedRequest(ctx, *value, fields...)

	case LocalStateEntry:
		return v.validateLocalStateEntry(ctx, value, fields...)
	case *LocalStateEntry:
		return v.validateLocalStateEntry(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SentinelValidator) validatePushPayload(_ context.Context, p models.PushPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldURL, FieldActions}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle, FieldBody:
			if strings.TrimSpace(p.Title) == "" && strings.TrimSpace(p.Body) == "" {
				return ErrEmptyTitleAndBody
			}
		case FieldURL:
			if p.Data.URL == "" {
				continue
			}
			if !isSameOriginPath(p.Data.URL) {
				return fmt.Errorf("%w: %q", ErrInvalidTargetURL, p.Data.URL)
			}
		case FieldActions:
			for i, a := range p.Actions {
				if strings.TrimSpace(a.Action) == "" || strings.TrimSpace(a.Title) == "" {
					return fmt.Errorf("%w: action #%d", ErrInvalidAction, i)
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *SentinelValidator) validateQueuedRequest(_ context.Context, q models.QueuedRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL, FieldMethod}
	}

	for _, field := range fields {
		switch field {
		case FieldURL:
			if q.URL == "" {
				return ErrEmptyURL
			}
			u, err := url.Parse(q.URL)
			if err != nil || !u.IsAbs() || u.Host == "" {
				return fmt.Errorf("%w: %q", ErrRelativeURL, q.URL)
			}
		case FieldMethod:
			switch q.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			default:
				return fmt.Errorf("%w: %q", ErrInvalidMethod, q.Method)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *SentinelValidator) validateLocalStateEntry(_ context.Context, e LocalStateEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldValue}
	}

	for _, field := range fields {
		switch field {
		case FieldKey:
			if e.Key == "" || len(e.Key) > MaxStateKeyLength || !utf8.ValidString(e.Key) {
				return fmt.Errorf("%w: %q", ErrInvalidStateKey, e.Key)
			}
			if strings.ContainsAny(e.Key, "\x00\n\r") {
				return fmt.Errorf("%w: control characters", ErrInvalidStateKey)
			}
		case FieldValue:
			if len(e.Value) > MaxStateValueSize {
				return ErrStateValueTooLarge
			}
			if !json.Valid(e.Value) {
				return ErrInvalidStateValue
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// isSameOriginPath accepts absolute paths ("/fields/12") and rejects
// scheme-relative or absolute URLs that would leave the application.
func isSameOriginPath(target string) bool {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return false
	}
	u, err := url.Parse(target)
	return err == nil && u.Scheme == "" && u.Host == ""
}
