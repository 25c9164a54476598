// Package workers runs the server's background jobs next to the transports.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
