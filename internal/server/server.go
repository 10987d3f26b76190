package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/app/gateway"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/config"
	httpserver "github.com/dnzxvy/cf-ai-nba-ai-agent/internal/http"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/http/handlers"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/http/middleware"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/logging"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/metrics"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/playerindex"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/providers"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	handler       *handlers.Handler
	httpServer    httpServer
	metricsServer httpServer
	loader        IndexLoader
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider and index loader.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	var providerName string
	if provider == nil {
		provider, providerName = factory.build(cfg)
	} else {
		provider, providerName = factory.wrap(cfg, provider)
	}

	index := playerindex.New()
	source, sourceName := selectIndexSource(cfg, provider, providerName)
	loader := playerindex.NewLoader(index, source, sourceName, logger, recorder, cfg.Index.RetryInterval)
	svc := gateway.NewService(provider, index, logger)
	handler, httpSrv := buildHTTPServer(cfg, svc, logger, recorder, loader)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		handler:       handler,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		loader:        loader,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, loader IndexLoader) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		loader:     loader,
	}
}

func buildHTTPServer(cfg config.Config, svc *gateway.Service, logger *slog.Logger, recorder *metrics.Recorder, loader IndexLoader) (*handlers.Handler, httpServer) {
	var statusFn func() playerindex.Status
	if loader != nil {
		statusFn = loader.Status
	}

	handler := handlers.NewHandler(svc, logger, cfg.DefaultNumGames, statusFn)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, middleware.Compress(router))

	return handler, newNetHTTPServer(cfg.Port, wrapped, writeTimeoutFor(cfg.NBAStats.Timeout))
}

// Run starts the index loader and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.loader.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.handler != nil {
		s.handler.Drain()
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.loader.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop index loader", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(recCfg.Port, handler, writeTimeoutFor(0))
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
