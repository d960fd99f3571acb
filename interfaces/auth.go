package interfaces

import "context"

// TokenProvider exchanges the configured credentials for a short-lived
// bearer token before each outbound call.
type TokenProvider interface {
	AcquireToken(ctx context.Context) (string, error)
}
