// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package agent

import "context"

// Runner defines the lifecycle contract of runnable applications.
type Runner interface {
	// Run starts the application and blocks until ctx is cancelled or a
	// termination signal arrives.
	Run(ctx context.Context) error
}
