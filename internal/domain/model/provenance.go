package model

import "strings"

// Provenance classification results for individual configuration values.
const (
	SourceVault   = "vault"
	SourceDefault = "default"
)

// Heuristics for recognizing values written by the dev-environment Vault
// bootstrap. These are environment-specific magic constants, not general
// detection logic: the bootstrap seeds secrets with a "dev-" prefix and the
// datasource user "devuser".
const (
	vaultSecretPrefix   = "dev-"
	vaultDatasourceUser = "devuser"
)

// ClassifySecret reports whether a secret value looks like it came from the
// dev Vault bootstrap ("vault") or from a compiled-in default ("default").
func ClassifySecret(value string) string {
	if strings.HasPrefix(value, vaultSecretPrefix) {
		return SourceVault
	}
	return SourceDefault
}

// ClassifyDatasourceUser classifies the datasource username by exact match
// against the dev bootstrap's user.
func ClassifyDatasourceUser(username string) string {
	if username == vaultDatasourceUser {
		return SourceVault
	}
	return SourceDefault
}

// MaskSecret returns a disclosure-minimizing preview of a secret. Values of
// six characters or fewer are fully masked; longer values keep their first
// and last three characters around a fixed-width mask. The mask width does
// not encode the original length.
func MaskSecret(secret string) string {
	if len(secret) <= 6 {
		return "***"
	}
	return secret[:3] + "***" + secret[len(secret)-3:]
}
