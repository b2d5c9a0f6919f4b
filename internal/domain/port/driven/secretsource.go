package driven

import "context"

// SecretSource defines the driven port for fetching a flat key-value secret
// from an external secret store. Implementations return the secret's string
// data or an error; they never fall back to defaults themselves.
type SecretSource interface {
	Fetch(ctx context.Context, path string) (map[string]string, error)
}
