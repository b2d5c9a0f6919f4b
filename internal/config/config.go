// Package config loads application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"vaultpeek/internal/domain/model"
)

// Keys a secret store entry may carry; ApplySecrets overlays them onto the
// env-bound values.
const (
	SecretKeyExternalAPIKey     = "external-api-key"
	SecretKeyJWTSecret          = "jwt-secret"
	SecretKeyDatasourceURL      = "datasource-url"
	SecretKeyDatasourceUsername = "datasource-username"
)

// Config holds the application configuration bound from VAULTPEEK_-prefixed
// environment variables. The secret-management agent is expected to inject
// the secret-valued bindings before process start; absent bindings fall back
// silently to the compiled-in defaults.
//
// Variables: VAULTPEEK_EXTERNAL_API_KEY, VAULTPEEK_JWT_SECRET,
// VAULTPEEK_VAULT_INTEGRATION_ENABLED, VAULTPEEK_DATABASE_ENABLED,
// VAULTPEEK_DATASOURCE_URL, VAULTPEEK_DATASOURCE_USERNAME,
// VAULTPEEK_LISTEN_ADDR, VAULTPEEK_VAULT_SECRET_PATH,
// VAULTPEEK_VAULT_AUTH_ROLE, VAULTPEEK_VAULT_AUTH_TOKEN_PATH.
// The Vault address and token come from the standard VAULT_ADDR/VAULT_TOKEN
// variables read by the Vault SDK itself.
type Config struct {
	// JWTSecret has no compiled-in fallback: an unbound JWT secret stays
	// empty so the config summary can report it as not configured. The
	// "default-secret" literal exists only for the provenance comparison.
	ExternalAPIKey          string `envconfig:"external_api_key" default:"default-key"`
	JWTSecret               string `envconfig:"jwt_secret"`
	VaultIntegrationEnabled bool   `envconfig:"vault_integration_enabled" default:"false"`
	DatabaseEnabled         bool   `envconfig:"database_enabled" default:"false"`
	DatasourceURL           string `envconfig:"datasource_url" default:"vaultpeek.db"`
	DatasourceUsername      string `envconfig:"datasource_username" default:"default"`

	ListenAddr string `envconfig:"listen_addr" default:"0.0.0.0:8080"`

	VaultSecretPath    string `envconfig:"vault_secret_path" default:"secret/data/vaultpeek"`
	VaultAuthRole      string `envconfig:"vault_auth_role" default:"vaultpeek"`
	VaultAuthTokenPath string `envconfig:"vault_auth_token_path" default:"/var/run/secrets/kubernetes.io/serviceaccount/token"`
}

// Load binds configuration from the environment. Missing secret bindings are
// not an error; they only leave the defaults in place.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("vaultpeek", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &cfg, nil
}

// ApplySecrets overlays values fetched from the secret store onto the
// env-bound configuration. Unknown keys are ignored; absent keys leave the
// existing values untouched. Must be called before Snapshot.
func (c *Config) ApplySecrets(secrets map[string]string) {
	if v, ok := secrets[SecretKeyExternalAPIKey]; ok && v != "" {
		c.ExternalAPIKey = v
	}
	if v, ok := secrets[SecretKeyJWTSecret]; ok && v != "" {
		c.JWTSecret = v
	}
	if v, ok := secrets[SecretKeyDatasourceURL]; ok && v != "" {
		c.DatasourceURL = v
	}
	if v, ok := secrets[SecretKeyDatasourceUsername]; ok && v != "" {
		c.DatasourceUsername = v
	}
}

// Snapshot freezes the configuration into the immutable value handed to every
// collaborator for the rest of the process lifetime.
func (c *Config) Snapshot() model.Snapshot {
	return model.Snapshot{
		ExternalAPIKey:          c.ExternalAPIKey,
		JWTSecret:               c.JWTSecret,
		VaultIntegrationEnabled: c.VaultIntegrationEnabled,
		DatabaseEnabled:         c.DatabaseEnabled,
		DatasourceURL:           c.DatasourceURL,
		DatasourceUsername:      c.DatasourceUsername,
	}
}
