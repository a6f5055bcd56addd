package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/api"
	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/assignment"
	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/completion"
	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/config"
	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/qa"
	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/telemetry"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	telemetry.Init()

	assigner := assignment.NewClient(cfg.AssignmentBaseURL, cfg.AssignmentAPIKey, cfg.FlagKey)
	completer := completion.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	svc := qa.NewService(assigner, completer, cfg.ModelMarker, cfg.FallbackAnswer, cfg.KnownVariants, log)

	srvAPI := api.NewServer(svc, api.Options{
		RateLimitPerIP: cfg.RateLimitPerIP,
		RequestTimeout: cfg.RequestTimeout,
		FlagKey:        cfg.FlagKey,
		ModelMarker:    cfg.ModelMarker,
	}, log)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      srvAPI.Router(),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("flag_key", cfg.FlagKey).Msg("listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	// metrics listener
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:    cfg.MetricsAddr,
		Handler: metricsMux,
	}
	go func() {
		log.Info().Str("addr", cfg.MetricsAddr).Msg("metrics listening")
		if err := metricsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShut)
	_ = metricsSrv.Shutdown(ctxShut)
	log.Info().Msg("stopped")
}
