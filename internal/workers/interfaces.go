// Package workers runs the background workers of the sync client.
package workers

import "context"

// Worker is a background process. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
