// Package server runs the agent's HTTP surface.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown, including the release of long-lived event streams.
package server
