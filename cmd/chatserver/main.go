// chatserver runs the relay HTTP server that answers repair questions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/repairguide/internal/config"
	"github.com/Faultbox/repairguide/internal/logger"
	"github.com/Faultbox/repairguide/internal/relay"
	"github.com/Faultbox/repairguide/internal/server"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := initLogger(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== How2Build relay ===")

	srv := server.New(server.Config{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ChatTimeout:  cfg.Relay.Timeout,
		AllowOrigins: cfg.Server.AllowOrigins,
		RateLimit:    cfg.Server.RateLimit,
		RateBurst:    cfg.Server.RateBurst,
	}, newRelay(cfg.Relay))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, srv); err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("relay stopped")
}

// serve runs srv until ctx is cancelled or the listener fails, then shuts
// it down gracefully.
func serve(ctx context.Context, srv *server.Server) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Listen)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func initLogger(cfg config.LoggingConfig) error {
	opts := logger.Options{Level: cfg.Level, JSON: cfg.JSON, Console: true}
	if cfg.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.LogFile)
	}
	return logger.InitWithOptions(opts)
}

func newRelay(cfg config.RelayConfig) *relay.Service {
	if cfg.Mock {
		logger.Info("relay in mock mode")
		return relay.NewMockService()
	}
	if cfg.APIKey == "" {
		logger.Warn("no API key configured; chat requests will fail", zap.String("env", config.APIKeyEnv))
	}
	client := relay.NewOpenAI(relay.OpenAIConfig{
		APIKey:      cfg.APIKey,
		URL:         cfg.URL,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.Timeout,
	})
	logger.Info("relay using model API", zap.String("model", cfg.Model))
	return relay.NewService(client, cfg.Model)
}
