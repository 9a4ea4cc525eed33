package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/docugen/internal/api"
	"git.home.luguber.info/inful/docugen/internal/export"
	"git.home.luguber.info/inful/docugen/internal/input"
	"git.home.luguber.info/inful/docugen/internal/llm"
	"git.home.luguber.info/inful/docugen/internal/metrics"
	"git.home.luguber.info/inful/docugen/internal/pipeline"
	prom "github.com/prometheus/client_golang/prometheus"
)

// ServeCmd runs the HTTP API server hosting a single generation session.
type ServeCmd struct {
	Addr string `short:"a" help:"Listen address (overrides configuration)"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	if err := cfg.ValidateForGeneration(); err != nil {
		return err
	}

	capability, err := llm.NewOpenAI(cfg.Provider)
	if err != nil {
		return err
	}

	var registry *prom.Registry
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Server.Metrics {
		registry = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	opts := pipeline.Options{
		Normalizer: input.NewNormalizer(cfg.Input),
		Capability: capability,
		Recorder:   recorder,
	}
	// The remote target is optional; export stays archive-only without it.
	if cfg.ValidateForRemoteExport() == nil {
		opts.Pusher = export.NewPusher(cfg.Remote)
	}

	addr := cfg.Server.Addr
	if s.Addr != "" {
		addr = s.Addr
	}

	srv := api.NewServer(api.Options{
		Addr:     addr,
		Session:  pipeline.NewSession(opts),
		Registry: registry,
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("API server listening", "addr", addr, "metrics", cfg.Server.Metrics)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down API server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}
