// how2build is a terminal repair guide: ask about a broken fixture, then walk
// through the repair steps while the model readout follows along.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/repairguide/internal/chat"
	"github.com/Faultbox/repairguide/internal/config"
	"github.com/Faultbox/repairguide/internal/logger"
	"github.com/Faultbox/repairguide/internal/relay"
	"github.com/Faultbox/repairguide/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the prompt; logs go to the file only.
	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	v := viewer.New()
	defer v.Close()

	s := &session{
		viewer: v,
		chat:   newSender(cfg),
		out:    os.Stdout,
	}
	if err := s.run(context.Background(), os.Stdin); err != nil {
		logger.Error("session ended", zap.Error(err))
		os.Exit(1)
	}
}

func newSender(cfg *config.Config) sender {
	if cfg.Viewer.RelayURL != "" {
		logger.Info("using remote relay", zap.String("url", cfg.Viewer.RelayURL))
		return chat.New(cfg.Viewer.RelayURL, cfg.Viewer.RequestTimeout)
	}
	if cfg.Relay.Mock {
		return &localRelay{svc: relay.NewMockService()}
	}
	client := relay.NewOpenAI(relay.OpenAIConfig{
		APIKey:      cfg.Relay.APIKey,
		URL:         cfg.Relay.URL,
		Temperature: cfg.Relay.Temperature,
		MaxTokens:   cfg.Relay.MaxTokens,
		Timeout:     cfg.Relay.Timeout,
	})
	return &localRelay{svc: relay.NewService(client, cfg.Relay.Model)}
}
