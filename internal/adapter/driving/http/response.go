package httphandler

import (
	"encoding/json"
	"net/http"

	"vaultpeek/internal/application"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// LivenessResponse is the JSON body of the root endpoint.
type LivenessResponse struct {
	Application      string `json:"application"`
	Status           string `json:"status"`
	VaultIntegration string `json:"vault-integration"`
	Timestamp        int64  `json:"timestamp"`
}

// ConfigResponse is the JSON body of the config endpoint.
type ConfigResponse struct {
	ExternalAPIKey      string `json:"external-api-key"`
	JWTSecretConfigured bool   `json:"jwt-secret-configured"`
	DatabaseURL         string `json:"database-url"`
	DatabaseUsername    string `json:"database-username"`
}

// HealthResponse is the JSON body of the health endpoint. DatabaseURL is set
// on a successful ping, DatabaseError on a failed one.
type HealthResponse struct {
	Database      string `json:"database"`
	DatabaseURL   string `json:"database-url,omitempty"`
	DatabaseError string `json:"database-error,omitempty"`
	VaultSecrets  string `json:"vault-secrets"`
	Status        string `json:"status"`
	Timestamp     int64  `json:"timestamp"`
}

// VaultTestResponse is the JSON body of the vault-test endpoint.
type VaultTestResponse struct {
	ExternalAPIKeySource string `json:"external-api-key-source"`
	JWTSecretSource      string `json:"jwt-secret-source"`
	DatabaseUserSource   string `json:"database-user-source"`
	ExternalAPIKeyMasked string `json:"external-api-key-masked"`
	JWTSecretMasked      string `json:"jwt-secret-masked"`
}

// toLivenessResponse converts a liveness summary to its JSON representation.
func toLivenessResponse(s application.LivenessSummary) LivenessResponse {
	return LivenessResponse{
		Application:      s.Application,
		Status:           s.Status,
		VaultIntegration: s.VaultIntegration,
		Timestamp:        s.Timestamp,
	}
}

// toConfigResponse converts a configuration summary to its JSON representation.
func toConfigResponse(s application.ConfigSummary) ConfigResponse {
	return ConfigResponse{
		ExternalAPIKey:      s.ExternalAPIKey,
		JWTSecretConfigured: s.JWTSecretConfigured,
		DatabaseURL:         s.DatabaseURL,
		DatabaseUsername:    s.DatabaseUsername,
	}
}

// toHealthResponse converts a health summary to its JSON representation.
func toHealthResponse(s application.HealthSummary) HealthResponse {
	return HealthResponse{
		Database:      s.Database,
		DatabaseURL:   s.DatabaseURL,
		DatabaseError: s.DatabaseError,
		VaultSecrets:  s.VaultSecrets,
		Status:        s.Status,
		Timestamp:     s.Timestamp,
	}
}

// toVaultTestResponse converts a vault-test summary to its JSON representation.
func toVaultTestResponse(s application.VaultTestSummary) VaultTestResponse {
	return VaultTestResponse{
		ExternalAPIKeySource: s.ExternalAPIKeySource,
		JWTSecretSource:      s.JWTSecretSource,
		DatabaseUserSource:   s.DatabaseUserSource,
		ExternalAPIKeyMasked: s.ExternalAPIKeyMasked,
		JWTSecretMasked:      s.JWTSecretMasked,
	}
}
