package driven

import "context"

// DatabasePinger defines the driven port for probing database reachability.
// Ping acquires a single pooled connection, verifies it with one round trip,
// and releases it before returning. On success it returns the resolved
// connection URL. Exactly one attempt per call; no retries.
type DatabasePinger interface {
	Ping(ctx context.Context) (resolvedURL string, err error)
}
