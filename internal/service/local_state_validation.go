package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/fieldwise-sentinel/internal/validators"
)

type LocalStateValidationService struct {
	inner     LocalStateService
	validator validators.Validator
}

func NewLocalStateValidationService() LocalStateServiceWrapper {
	return &LocalStateValidationService{
		validator: validators.NewSentinelValidator(),
	}
}

func (v *LocalStateValidationService) Get(ctx context.Context, key string) (json.RawMessage, error) {
	if err := v.validateKey(ctx, key); err != nil {
		return nil, err
	}
	return v.inner.Get(ctx, key)
}

func (v *LocalStateValidationService) Put(ctx context.Context, key string, value json.RawMessage) error {
	if err := v.validateKey(ctx, key); err != nil {
		return err
	}

	entry := validators.LocalStateEntry{Key: key, Value: value}
	if err := v.validator.Validate(ctx, entry, validators.FieldValue); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStateValue, err)
	}

	return v.inner.Put(ctx, key, value)
}

func (v *LocalStateValidationService) Delete(ctx context.Context, key string) error {
	if err := v.validateKey(ctx, key); err != nil {
		return err
	}
	return v.inner.Delete(ctx, key)
}

func (v *LocalStateValidationService) Keys(ctx context.Context) ([]string, error) {
	return v.inner.Keys(ctx)
}

func (v *LocalStateValidationService) Wrap(wrapped LocalStateService) LocalStateService {
	v.inner = wrapped
	return v
}

func (v *LocalStateValidationService) validateKey(ctx context.Context, key string) error {
	err := v.validator.Validate(ctx, validators.LocalStateEntry{Key: key}, validators.FieldKey)
	if errors.Is(err, validators.ErrInvalidStateKey) {
		return fmt.Errorf("%w: %w", ErrInvalidStateKey, err)
	}
	return err
}
