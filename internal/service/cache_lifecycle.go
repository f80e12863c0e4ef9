package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/store"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

// Install fetches every shell manifest URL concurrently and stores them in
// one transaction. Nothing is stored unless every fetch answered 200.
func (s *cacheStrategyService) Install(ctx context.Context) error {
	entries := make([]models.CachedResponse, len(s.manifest))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range s.manifest {
		g.Go(func() error {
			req := models.Request{
				Method: http.MethodGet,
				URL:    s.router.resolve(p),
				Header: make(http.Header),
			}

			resp, err := s.fetcher.Fetch(gctx, req)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", p, err)
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("fetch %s: unexpected status %d", p, resp.StatusCode)
			}

			entries[i] = s.entry(s.assetPartition, req, resp)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}

	if err := s.cache.Open(ctx, s.assetPartition); err != nil {
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}
	if err := s.cache.PutAll(ctx, entries); err != nil {
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "cacheStrategyService.Install").
		Str("partition", s.assetPartition).
		Int("entries", len(entries)).
		Msg("shell installed")

	return nil
}

// Activate deletes every partition other than the current asset and data
// partitions and starts intercepting requests.
func (s *cacheStrategyService) Activate(ctx context.Context) error {
	partitions, err := s.cache.Partitions(ctx)
	if err != nil {
		return fmt.Errorf("error listing cache partitions: %w", err)
	}

	log := logger.FromContext(ctx)
	for _, partition := range partitions {
		if partition == s.assetPartition || partition == s.dataPartition {
			continue
		}

		err = s.cache.DeletePartition(ctx, partition)
		if err != nil && !errors.Is(err, store.ErrPartitionNotFound) {
			return fmt.Errorf("error deleting cache partition %q: %w", partition, err)
		}
		log.Info().
			Str("func", "cacheStrategyService.Activate").
			Str("partition", partition).
			Msg("stale partition deleted")
	}

	s.active.Store(true)
	return nil
}
