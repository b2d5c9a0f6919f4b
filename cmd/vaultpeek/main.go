package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	sqliteadapter "vaultpeek/internal/adapter/driven/sqlite"
	vaultadapter "vaultpeek/internal/adapter/driven/vault"
	httphandler "vaultpeek/internal/adapter/driving/http"
	"vaultpeek/internal/application"
	"vaultpeek/internal/config"
	"vaultpeek/internal/domain/port/driven"
)

const appName = "vaultpeek"

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (absent secret bindings fall back to defaults).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"vault_integration", cfg.VaultIntegrationEnabled,
		"database_enabled", cfg.DatabaseEnabled,
		"configuration_source", cfg.Snapshot().Source(),
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Optionally overlay secrets fetched straight from Vault. Fetch
	// failure is not fatal: the env-injected or default values stand.
	if cfg.VaultIntegrationEnabled && os.Getenv("VAULT_ADDR") != "" {
		fetchCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		overlayVaultSecrets(fetchCtx, cfg)
		cancel()
	}

	// 4. Freeze the snapshot. Nothing mutates configuration past this point.
	snap := cfg.Snapshot()

	// 5. Open the database pool (lazy; reachability surfaces in /health).
	db, err := sqliteadapter.Open(cfg.DatasourceURL)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database pool opened", "url", cfg.DatasourceURL)

	// 6. Run migrations when database integration is on. Failure is logged,
	// not fatal: database trouble is reported by /health, not by startup.
	if snap.DatabaseEnabled {
		if err := db.RunMigrations(); err != nil {
			slog.Warn("migrations failed, continuing", "error", err)
		} else {
			slog.Info("migrations complete")
		}
	}

	// 7. Wire the status service and HTTP handler.
	statusSvc := application.NewStatusService(appName, snap, db)
	handler := httphandler.NewHandler(statusSvc, slog.Default())
	srvHandler := httphandler.NewServeMux(handler, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srvHandler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	slog.Info("vaultpeek started",
		"listen_addr", cfg.ListenAddr,
		"configuration_source", snap.Source(),
	)

	// 8. Wait for shutdown signal, then drain.
	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

// overlayVaultSecrets fetches the KV secret at the configured path and
// overlays its keys onto cfg. Any failure leaves cfg untouched.
func overlayVaultSecrets(ctx context.Context, cfg *config.Config) {
	client, err := vaultadapter.NewClient(ctx, cfg.VaultAuthRole, cfg.VaultAuthTokenPath)
	if err != nil {
		slog.Warn("vault client unavailable, using env-injected values", "error", err)
		return
	}

	applyStoreSecrets(ctx, cfg, client)
}

// applyStoreSecrets reads the configured secret from the store and applies
// it. Fetch failure is logged; the env-injected or default values stand.
func applyStoreSecrets(ctx context.Context, cfg *config.Config, source driven.SecretSource) {
	secrets, err := source.Fetch(ctx, cfg.VaultSecretPath)
	if err != nil {
		slog.Warn("vault secret fetch failed, using env-injected values",
			"path", cfg.VaultSecretPath,
			"error", err,
		)
		return
	}

	cfg.ApplySecrets(secrets)
	slog.Info("vault secrets applied", "path", cfg.VaultSecretPath, "keys", len(secrets))
}
