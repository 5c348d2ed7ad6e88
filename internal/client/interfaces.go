// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle of the sync client process.
type Client interface {
	// Run syncs pending changes and keeps syncing in the background until
	// ctx is cancelled or a stop signal arrives.
	Run(ctx context.Context) error
}
