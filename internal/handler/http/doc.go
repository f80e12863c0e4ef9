// Package http implements the agent's HTTP surface.
//
// Every request that is not addressed to the control API under /_sentinel/
// or to /metrics is handed to the cache strategy engine, which decides
// whether it is served from the network, a cache partition or the offline
// queue. The control API exposes the network state, the queue, manual sync,
// backups, local state, push notifications and the event stream that
// carries broadcast messages to open UI surfaces.
package http
