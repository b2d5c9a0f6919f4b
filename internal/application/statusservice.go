// Package application contains the use-case services that assemble
// diagnostic payloads from the configuration snapshot and driven ports.
package application

import (
	"context"
	"time"

	"vaultpeek/internal/domain/model"
	"vaultpeek/internal/domain/port/driven"
)

// Status values reported by the diagnostic summaries.
const (
	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
	SecretsConfigured    = "configured"
	SecretsUsingDefaults = "using-defaults"
)

// LivenessSummary identifies the running process.
type LivenessSummary struct {
	Application      string
	Status           string
	VaultIntegration string
	Timestamp        int64
}

// ConfigSummary exposes the injected configuration. ExternalAPIKey is shown
// verbatim; this is a non-production demo and the unmasked exposure is
// deliberate.
type ConfigSummary struct {
	ExternalAPIKey      string
	JWTSecretConfigured bool
	DatabaseURL         string
	DatabaseUsername    string
}

// HealthSummary reports the outcome of a single database ping plus the secret
// provenance heuristic. Exactly one of DatabaseURL/DatabaseError is set.
type HealthSummary struct {
	Database      string
	DatabaseURL   string
	DatabaseError string
	VaultSecrets  string
	Status        string
	Timestamp     int64
}

// VaultTestSummary classifies each configured value as store-sourced or
// default-sourced and carries masked previews of the two secrets.
type VaultTestSummary struct {
	ExternalAPIKeySource string
	JWTSecretSource      string
	DatabaseUserSource   string
	ExternalAPIKeyMasked string
	JWTSecretMasked      string
}

// StatusService serves the four read-only diagnostic queries. It holds the
// immutable snapshot and the database pinger; it never mutates state, so a
// single instance is shared by all handlers.
type StatusService struct {
	appName string
	snap    model.Snapshot
	pinger  driven.DatabasePinger
	now     func() time.Time
}

// NewStatusService creates a StatusService over the frozen snapshot.
func NewStatusService(appName string, snap model.Snapshot, pinger driven.DatabasePinger) *StatusService {
	return &StatusService{
		appName: appName,
		snap:    snap,
		pinger:  pinger,
		now:     time.Now,
	}
}

// Liveness returns the static identity fields plus the current timestamp in
// milliseconds since epoch. Always succeeds.
func (s *StatusService) Liveness() LivenessSummary {
	return LivenessSummary{
		Application:      s.appName,
		Status:           "running",
		VaultIntegration: "enabled",
		Timestamp:        s.now().UnixMilli(),
	}
}

// Configuration returns the configuration summary. It never touches the
// database.
func (s *StatusService) Configuration() ConfigSummary {
	return ConfigSummary{
		ExternalAPIKey:      s.snap.ExternalAPIKey,
		JWTSecretConfigured: s.snap.JWTSecret != "",
		DatabaseURL:         s.snap.DatasourceURL,
		DatabaseUsername:    s.snap.DatasourceUsername,
	}
}

// Health performs a single scoped database ping and reports the outcome. A
// ping failure is embedded in the summary, never returned as an error, and
// the overall status stays "healthy" regardless of the database outcome:
// liveness is deliberately decoupled from database reachability.
func (s *StatusService) Health(ctx context.Context) HealthSummary {
	summary := HealthSummary{
		Status:    "healthy",
		Timestamp: s.now().UnixMilli(),
	}

	if url, err := s.pinger.Ping(ctx); err != nil {
		summary.Database = DatabaseDisconnected
		summary.DatabaseError = err.Error()
	} else {
		summary.Database = DatabaseConnected
		summary.DatabaseURL = url
	}

	if s.snap.ExternalAPIKey != "" && s.snap.ExternalAPIKey != model.DefaultExternalAPIKey {
		summary.VaultSecrets = SecretsConfigured
	} else {
		summary.VaultSecrets = SecretsUsingDefaults
	}

	return summary
}

// VaultTest classifies the provenance of the three configured values and
// returns masked previews of the two secrets.
func (s *StatusService) VaultTest() VaultTestSummary {
	return VaultTestSummary{
		ExternalAPIKeySource: model.ClassifySecret(s.snap.ExternalAPIKey),
		JWTSecretSource:      model.ClassifySecret(s.snap.JWTSecret),
		DatabaseUserSource:   model.ClassifyDatasourceUser(s.snap.DatasourceUsername),
		ExternalAPIKeyMasked: model.MaskSecret(s.snap.ExternalAPIKey),
		JWTSecretMasked:      model.MaskSecret(s.snap.JWTSecret),
	}
}
