// Package delivery holds the inbound adapters: the API server, the notifier
// worker and the queue consumer.
package delivery

import "context"

// Delivery is a long running inbound adapter started by the fx graph.
type Delivery interface {
	Serve(ctx context.Context) error
}
