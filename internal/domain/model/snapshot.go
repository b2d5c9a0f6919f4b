package model

// Compiled-in fallback literals used when the secret-management agent has not
// injected a value. A snapshot whose secrets still equal these literals is
// classified as running on defaults.
const (
	DefaultExternalAPIKey = "default-key"
	DefaultJWTSecret      = "default-secret"
)

// Snapshot is the process-wide configuration snapshot. It is built exactly
// once at startup from environment bindings (optionally overlaid with values
// fetched from Vault) and never mutated afterwards, so it is safe to share
// across concurrent handlers without locking.
type Snapshot struct {
	ExternalAPIKey          string
	JWTSecret               string
	VaultIntegrationEnabled bool
	DatabaseEnabled         bool
	DatasourceURL           string
	DatasourceUsername      string
}

// ProperlyConfigured reports whether both secret values were injected rather
// than left at their compiled-in defaults. This is a string-equality
// heuristic: an injected value that happens to equal the default literal is
// indistinguishable from an absent one.
func (s Snapshot) ProperlyConfigured() bool {
	return s.ExternalAPIKey != "" &&
		s.ExternalAPIKey != DefaultExternalAPIKey &&
		s.JWTSecret != "" &&
		s.JWTSecret != DefaultJWTSecret
}

// Source returns "vault" when the snapshot is properly configured and
// "defaults" otherwise.
func (s Snapshot) Source() string {
	if s.ProperlyConfigured() {
		return "vault"
	}
	return "defaults"
}
