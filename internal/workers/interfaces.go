// Package workers runs the background jobs of the sync client.
//
// A Worker starts its own goroutines in Run and releases them in Stop;
// Workers starts and stops a group of them together.
package workers

import "context"

// Worker is a background job bound to a context.
//
// Run must not block: it starts the job and returns. Stop blocks until the
// job has exited.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
