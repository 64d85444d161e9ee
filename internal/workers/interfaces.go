// Package workers provides abstractions for managing and running
// background workers of the journal client.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's goroutines and returns immediately; the worker
// runs until ctx is cancelled or Stop is called. Stop blocks until the
// worker has fully terminated and is safe to call more than once.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    // start background processing
//	}
//
//	func (w *MyWorker) Stop() {}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
