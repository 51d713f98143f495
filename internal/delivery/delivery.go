// Package delivery defines the contract every transport entrypoint implements.
package delivery

import "context"

// Delivery is one externally reachable surface of the service.
type Delivery interface {
	Serve(ctx context.Context) error
}
