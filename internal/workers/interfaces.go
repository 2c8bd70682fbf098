// Package workers runs the server's background jobs: history pruning and the
// periodic gRPC health probe. A Workers aggregate starts and stops them as
// one unit.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: it spawns whatever goroutines the job needs and
// returns. Stop must block until those goroutines have exited and must be
// safe to call on a worker that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
