package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/config"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/logging"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
