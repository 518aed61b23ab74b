// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/TheACJ/SkillBridge-sub000/docs" // registers the OpenAPI document
	"github.com/TheACJ/SkillBridge-sub000/internal/api"
	"github.com/TheACJ/SkillBridge-sub000/internal/config"
	"github.com/TheACJ/SkillBridge-sub000/internal/logging"
	"github.com/TheACJ/SkillBridge-sub000/internal/matching"
	"github.com/TheACJ/SkillBridge-sub000/internal/metrics"
	"github.com/TheACJ/SkillBridge-sub000/internal/supervisor"
	"github.com/TheACJ/SkillBridge-sub000/internal/supervisor/services"
	"github.com/TheACJ/SkillBridge-sub000/internal/validation"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.LoggingInit())
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting SkillBridge matching service")

	engine, err := matching.NewEngine(cfg.EngineConfig(), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create matching engine")
	}
	engine.SetRequestValidator(validation.ValidateMatchRequest)

	logging.Info().
		Int("default_limit", cfg.Matching.DefaultLimit).
		Int("max_limit", cfg.Matching.MaxLimit).
		Int("max_candidates", cfg.Matching.MaxCandidates).
		Dur("timeout", cfg.Matching.Timeout).
		Msg("Matching engine initialized")

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	for _, origin := range cfg.Security.CORSOrigins {
		if origin == "*" {
			logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*)")
			break
		}
	}

	handler := api.NewHandler(engine, version, cfg.Server.MaxBodyBytes)
	chiMW := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMW)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sutureslog needs slog; the adapter writes through zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Stats.ReportEnabled {
		tree.AddCoreService(services.NewStatsReporter(engine, services.StatsReporterConfig{
			Interval:     cfg.Stats.ReportInterval,
			LogSnapshots: true,
		}, logging.Logger()))
		logging.Info().Dur("interval", cfg.Stats.ReportInterval).Msg("Stats reporter added")
	}

	tree.AddAPIService(services.NewHTTPService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		// a second signal falls through to the default handler and kills the process
		signal.Stop(sigCh)
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal, waiting for supervisor to finish...")
		cancel()
	}()

	if err := supervisor.WaitForShutdown(ctx, tree.ServeBackground(ctx)); err != nil {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	stats := engine.Stats()
	logging.Info().
		Int64("total_requests", stats.TotalRequests).
		Int64("uptime_seconds", stats.UptimeSeconds).
		Msg("Application stopped gracefully")
}
