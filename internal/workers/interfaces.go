// Package workers provides the background machinery of the sentinel agent:
// the deferred-sync manager, periodic tasks such as state backups and the
// connectivity probe.
//
// Every worker implements Worker and is driven by a Workers aggregate that
// starts them together with the agent and stops them on shutdown.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines, which
// live until ctx is cancelled or Stop is called. Stop blocks until those
// goroutines have exited and is safe to call on a stopped worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// TaskFunc is the body of a deferred or periodic task.
type TaskFunc func(ctx context.Context) error

// Pinger probes the origin.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ConnectivitySink receives connectivity signals.
type ConnectivitySink interface {
	SetOnline(ctx context.Context, online bool)
}
