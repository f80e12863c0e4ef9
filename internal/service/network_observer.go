package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/metrics"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

// pendingCounter reports the number of requests awaiting replay.
type pendingCounter interface {
	Len() int
}

type networkObserver struct {
	mu    sync.RWMutex
	state models.NetworkState

	listenersMu sync.Mutex
	listeners   []func(ctx context.Context, online bool)

	pending     pendingCounter
	broadcaster Broadcaster
	metrics     *metrics.Metrics
	logger      *logger.Logger
}

// NewNetworkObserver builds the observer in the given initial connectivity
// state. The initial state is not broadcast.
func NewNetworkObserver(pending pendingCounter, broadcaster Broadcaster, online bool, m *metrics.Metrics, logger *logger.Logger) NetworkObserver {
	m.SetOnline(online)

	return &networkObserver{
		state: models.NetworkState{
			IsOnline:      online,
			SyncAvailable: online,
			PendingCount:  pending.Len(),
		},
		pending:     pending,
		broadcaster: broadcaster,
		metrics:     m,
		logger:      logger,
	}
}

// SetOnline applies a connectivity signal. A signal equal to the current
// state is ignored; a transition is broadcast and then delivered to every
// listener in registration order.
func (o *networkObserver) SetOnline(ctx context.Context, online bool) {
	o.mu.Lock()
	if o.state.IsOnline == online {
		o.mu.Unlock()
		return
	}
	o.state.IsOnline = online
	o.state.SyncAvailable = online
	o.state.PendingCount = o.pending.Len()
	o.mu.Unlock()

	o.metrics.SetOnline(online)

	msgType := models.MessageNetworkOffline
	if online {
		msgType = models.MessageNetworkOnline
	}
	o.broadcaster.Publish(models.Message{Type: msgType})

	o.logger.Info().
		Str("func", "networkObserver.SetOnline").
		Bool("online", online).
		Msg("network state changed")

	o.listenersMu.Lock()
	listeners := make([]func(context.Context, bool), len(o.listeners))
	copy(listeners, o.listeners)
	o.listenersMu.Unlock()

	for _, listener := range listeners {
		listener(ctx, online)
	}
}

func (o *networkObserver) IsOnline() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state.IsOnline
}

// State returns a copy of the current state.
func (o *networkObserver) State() models.NetworkState {
	o.mu.RLock()
	defer o.mu.RUnlock()

	state := o.state
	if state.LastSyncedAt != nil {
		t := *state.LastSyncedAt
		state.LastSyncedAt = &t
	}
	if state.LastBackupAt != nil {
		t := *state.LastBackupAt
		state.LastBackupAt = &t
	}
	return state
}

func (o *networkObserver) HandleMessage(msg models.Message) {
	switch msg.Type {
	case models.MessageSyncCompleted:
		if len(msg.Results) > 0 {
			ts := msg.Timestamp
			o.mu.Lock()
			o.state.LastSyncedAt = &ts
			o.mu.Unlock()
		}
		o.RefreshPending()
	case models.MessageSyncFailed:
		o.RefreshPending()
	case models.MessageBackupCompleted:
		ts := msg.Timestamp
		o.mu.Lock()
		o.state.LastBackupAt = &ts
		o.mu.Unlock()
	}
}

func (o *networkObserver) RefreshPending() {
	count := o.pending.Len()

	o.mu.Lock()
	o.state.PendingCount = count
	o.mu.Unlock()
}

func (o *networkObserver) OnTransition(listener func(ctx context.Context, online bool)) {
	o.listenersMu.Lock()
	defer o.listenersMu.Unlock()
	o.listeners = append(o.listeners, listener)
}
