// Package delivery defines the inbound transport contract shared by the
// HTTP and worker servers.
package delivery

import "context"

// Delivery is a server that accepts inbound requests until its context is
// cancelled or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
