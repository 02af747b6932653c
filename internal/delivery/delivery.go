// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a serving surface the application can run. Serve blocks until
// the server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
