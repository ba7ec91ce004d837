// Package delivery holds the surfaces that expose the storefront use cases.
package delivery

import "context"

// Delivery is a long-running surface started by the application.
type Delivery interface {
	// Serve blocks until the surface stops.
	Serve(ctx context.Context) error
}
