// Package workers provides the background workers of the notesync daemon:
// the periodic sync of every vault and the watcher that syncs file vaults
// when their directory changes.
// It defines the Worker interface and a Workers aggregate that starts and
// stops all workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns once it is running; the work itself
// happens on goroutines owned by the worker. The goroutines exit when ctx is
// cancelled or Stop is called.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go process(ctx)
//	    return nil
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Run(ctx context.Context) error
	Stop()
}
