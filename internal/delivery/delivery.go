// Package delivery defines the contract every transport entry point
// implements.
package delivery

import "context"

// Delivery is a serving surface with a blocking Serve loop; shutdown is
// driven through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
