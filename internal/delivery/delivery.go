// Package delivery defines the contract shared by every transport that
// serves the application (HTTP today, others as needed).
package delivery

import "context"

// Delivery is a long-running transport endpoint started by the process
// supervisor. Serve blocks until the endpoint stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
