package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"guardian/internal/api"
	"guardian/internal/api/handler/v1handler"
	"guardian/internal/config"
	"guardian/internal/exposure"
	"guardian/internal/hygiene"
	"guardian/internal/monitor"
	"guardian/pkg/logger"
	"guardian/pkg/narrative"
	"guardian/pkg/narrative/gemini"
	"guardian/pkg/source"
	"guardian/pkg/source/hibp"
	"guardian/pkg/source/leakcheck"
	"guardian/pkg/source/pastesearch"
	"guardian/pkg/source/socialprofile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// providerClientTimeout is a hard cap on provider HTTP calls, on top of the
// per-lookup context deadline applied by the aggregator.
const providerClientTimeout = 30 * time.Second

// buildSources constructs the enabled exposure data source clients from the
// configuration. Providers missing credentials are skipped with a warning so
// a partial configuration still serves degraded results.
func buildSources(ctx context.Context, cfg *config.Config) []source.Client {
	httpClient := &http.Client{Timeout: providerClientTimeout}

	var clients []source.Client
	if cfg.Providers.HIBP.APIKey != "" {
		clients = append(clients, hibp.New(httpClient, cfg.Providers.HIBP.APIKey, cfg.Providers.HIBP.BaseURL))
	} else {
		logger.Warn(ctx, "HIBP API key not set, skipping breach database lookups")
	}
	if cfg.Providers.LeakCheck.Enabled {
		clients = append(clients, leakcheck.New(httpClient, cfg.Providers.LeakCheck.BaseURL))
	}
	if cfg.Providers.Search.APIKey != "" && cfg.Providers.Search.EngineID != "" {
		clients = append(clients, pastesearch.New(httpClient,
			cfg.Providers.Search.APIKey,
			cfg.Providers.Search.EngineID,
			cfg.Providers.Search.BaseURL))
	} else {
		logger.Warn(ctx, "search API credentials not set, skipping paste site discovery")
	}
	if cfg.Providers.Social.Enabled {
		clients = append(clients, socialprofile.New(httpClient, cfg.Providers.Social.GithubAPIURL))
	}

	return clients
}

// buildHygieneScorer constructs the questionnaire scorer, with an optional
// questionnaire override and an optional narrative generator.
func buildHygieneScorer(ctx context.Context, cfg *config.Config) *hygiene.Scorer {
	questionnaire, err := hygiene.DefaultQuestionnaire()
	if cfg.Hygiene.QuestionnairePath != "" {
		questionnaire, err = hygiene.LoadQuestionnaire(cfg.Hygiene.QuestionnairePath)
	}
	if err != nil {
		logger.Fatal(ctx, "could not load questionnaire", zap.Error(err))
	}

	var generator narrative.Generator
	if cfg.Providers.Gemini.APIKey != "" {
		generator = gemini.New(&http.Client{Timeout: providerClientTimeout},
			cfg.Providers.Gemini.APIKey,
			cfg.Providers.Gemini.Model,
			cfg.Providers.Gemini.BaseURL)
	} else {
		logger.Warn(ctx, "Gemini API key not set, hygiene reports will have no narrative summary")
	}

	return hygiene.NewScorer(questionnaire, generator, hygiene.Options{
		HighRiskBelow:   cfg.Hygiene.HighRiskBelow,
		MediumRiskBelow: cfg.Hygiene.MediumRiskBelow,
	})
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the exposure monitoring API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			aggregator := exposure.New(buildSources(ctx, cfg),
				exposure.NewScorer(exposure.ScorerOptions{}),
				exposure.Options{SourceTimeout: cfg.Aggregator.SourceTimeout})

			svc := monitor.New(strg, aggregator, buildHygieneScorer(ctx, cfg))

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{Monitor: svc}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
