// Package delivery holds the inbound transports of the addressing service.
package delivery

import "context"

// Delivery is a long-running inbound transport started by the binaries.
type Delivery interface {
	Serve(ctx context.Context) error
}
