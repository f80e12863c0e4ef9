package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/store"
)

type localStateService struct {
	kv store.KeyValueStore

	logger *logger.Logger
}

func NewLocalStateService(kv store.KeyValueStore, logger *logger.Logger) LocalStateService {
	return &localStateService{
		kv:     kv,
		logger: logger,
	}
}

func (s *localStateService) Get(ctx context.Context, key string) (json.RawMessage, error) {
	value, err := s.kv.Get(ctx, key)
	if errors.Is(err, store.ErrSlotNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrStateNotFound, key)
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(value), nil
}

func (s *localStateService) Put(ctx context.Context, key string, value json.RawMessage) error {
	if key == QueueSlot {
		return fmt.Errorf("%w: %q", ErrReadOnlySlot, key)
	}
	return s.kv.Set(ctx, key, value)
}

func (s *localStateService) Delete(ctx context.Context, key string) error {
	if key == QueueSlot {
		return fmt.Errorf("%w: %q", ErrReadOnlySlot, key)
	}
	return s.kv.Delete(ctx, key)
}

// Keys lists every stored key, the queue slot included, in ascending order.
func (s *localStateService) Keys(ctx context.Context) ([]string, error) {
	slots, err := s.kv.All(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(slots))
	for key := range slots {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys, nil
}
