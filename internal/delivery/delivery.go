// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a server that blocks in Serve until the context ends or the
// listener fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
