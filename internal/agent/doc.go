// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package agent implements the sentinel process runtime.
//
// It wires storage, the origin fetcher, services, background workers and
// the HTTP surface into a single lifecycle: rehydrate the queue, install and
// activate the cache, run until a termination signal, then stop workers and
// close storage.
package agent
