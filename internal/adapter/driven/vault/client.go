// Package vault is the driven adapter for reading secrets straight from a
// Vault KV store. It is only used when vault integration is enabled and
// VAULT_ADDR is set; otherwise the service relies on the env bindings the
// secret-management agent injected.
package vault

import (
	"context"
	"fmt"
	"os"
	"strings"

	vaultapi "github.com/hashicorp/vault/api"
)

// Client wraps the Vault API client.
type Client struct {
	client *vaultapi.Client
}

// NewClient creates a Vault client from the standard environment
// (VAULT_ADDR, VAULT_TOKEN, VAULT_CACERT, ...). When no token is present it
// logs in with the Kubernetes auth method using the mounted service-account
// token and the given role.
func NewClient(ctx context.Context, role, saTokenPath string) (*Client, error) {
	cfg := vaultapi.DefaultConfig()

	client, err := vaultapi.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("create vault client: %w", err)
	}

	if client.Token() == "" {
		if err := kubernetesLogin(ctx, client, role, saTokenPath); err != nil {
			return nil, err
		}
	}

	return &Client{client: client}, nil
}

// kubernetesLogin exchanges the mounted service-account JWT for a Vault token
// via the kubernetes auth method.
func kubernetesLogin(ctx context.Context, client *vaultapi.Client, role, saTokenPath string) error {
	jwt, err := os.ReadFile(saTokenPath)
	if err != nil {
		return fmt.Errorf("read service account token: %w", err)
	}

	secret, err := client.Logical().WriteWithContext(ctx, "auth/kubernetes/login", map[string]interface{}{
		"jwt":  strings.TrimSpace(string(jwt)),
		"role": role,
	})
	if err != nil {
		return fmt.Errorf("kubernetes auth login: %w", err)
	}
	if secret == nil || secret.Auth == nil || secret.Auth.ClientToken == "" {
		return fmt.Errorf("kubernetes auth login returned no client token")
	}

	client.SetToken(secret.Auth.ClientToken)
	return nil
}

// Fetch reads the secret at path and returns its data as a flat string map.
// Both KV v1 and KV v2 response shapes are handled; non-string values are
// stringified.
func (c *Client) Fetch(ctx context.Context, path string) (map[string]string, error) {
	secret, err := c.client.Logical().ReadWithContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read secret from vault: %w", err)
	}
	if secret == nil {
		return nil, fmt.Errorf("secret not found at path: %s", path)
	}

	data := secret.Data
	// KV v2 nests the payload under "data".
	if nested, ok := secret.Data["data"].(map[string]interface{}); ok {
		data = nested
	}

	result := make(map[string]string, len(data))
	for k, v := range data {
		if s, ok := v.(string); ok {
			result[k] = s
		} else {
			result[k] = fmt.Sprintf("%v", v)
		}
	}

	return result, nil
}
