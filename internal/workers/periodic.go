// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
)

// PeriodicTask calls a TaskFunc on a ticker.
type PeriodicTask struct {
	name      string
	interval  time.Duration
	immediate bool
	task      TaskFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewPeriodicTask creates a task that runs fn every interval once started.
// A zero or negative interval disables the task: Start does nothing.
func NewPeriodicTask(name string, interval time.Duration, fn TaskFunc, logger *logger.Logger) *PeriodicTask {
	return &PeriodicTask{
		name:     name,
		interval: interval,
		task:     fn,
		logger:   logger,
	}
}

// Start implements Worker. It stops any previously running loop, then
// launches a goroutine that calls the task every interval until ctx is
// cancelled or Stop is called.
func (p *PeriodicTask) Start(ctx context.Context) {
	if p.interval <= 0 {
		p.logger.Info().Str("task", p.name).Msg("periodic task disabled")
		return
	}

	p.Stop()

	p.mu.Lock()
	taskCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		if p.immediate {
			p.runOnce(taskCtx)
		}

		for {
			select {
			case <-taskCtx.Done():
				return
			case <-t.C:
				p.runOnce(taskCtx)
			}
		}
	}()
}

// Stop implements Worker. It cancels the loop and waits for it to exit.
func (p *PeriodicTask) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *PeriodicTask) runOnce(ctx context.Context) {
	if err := p.task(ctx); err != nil && ctx.Err() == nil {
		p.logger.Warn().Err(err).
			Str("func", "PeriodicTask.runOnce").
			Str("task", p.name).
			Msg("periodic task failed")
	}
}
