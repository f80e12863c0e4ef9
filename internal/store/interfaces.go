package store

import (
	"context"

	"github.com/MKhiriev/fieldwise-sentinel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CacheStorage persists captured responses in named partitions.
// A partition is append/overwrite-only: entries disappear only through
// Delete or DeletePartition.
type CacheStorage interface {
	// Open creates the partition if it does not exist yet.
	Open(ctx context.Context, partition string) error
	// Put stores entry under (entry.Partition, entry.Key), overwriting any
	// previous entry and creating the partition on demand.
	Put(ctx context.Context, entry models.CachedResponse) error
	// PutAll stores every entry in one transaction: either all are stored
	// or none are.
	PutAll(ctx context.Context, entries []models.CachedResponse) error
	// Match returns the entry stored under key or ErrCacheMiss.
	Match(ctx context.Context, partition, key string) (models.CachedResponse, error)
	// Keys lists the keys of a partition in ascending order.
	Keys(ctx context.Context, partition string) ([]string, error)
	// Delete removes one entry. Deleting a missing entry is not an error.
	Delete(ctx context.Context, partition, key string) error
	// Partitions lists every existing partition name in ascending order.
	Partitions(ctx context.Context) ([]string, error)
	// DeletePartition removes the partition and all its entries, or returns
	// ErrPartitionNotFound.
	DeletePartition(ctx context.Context, partition string) error
}

// KeyValueStore is the durable key-value area of the agent: the request
// queue slot and the UI's opaque local state live here.
type KeyValueStore interface {
	// Get returns the value of slot or ErrSlotNotFound.
	Get(ctx context.Context, slot string) ([]byte, error)
	// Set writes value to slot, replacing the previous value.
	Set(ctx context.Context, slot string, value []byte) error
	// All returns a copy of every slot.
	All(ctx context.Context) (map[string][]byte, error)
	// Delete removes slot. Deleting a missing slot is not an error.
	Delete(ctx context.Context, slot string) error
}
