// Package config handles configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Config holds all settings for the relay server and the viewer client.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Relay   RelayConfig   `yaml:"relay"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	AllowOrigins []string      `yaml:"allow_origins"`
	RateLimit    float64       `yaml:"rate_limit"` // chat requests per second per client, 0 disables
	RateBurst    int           `yaml:"rate_burst"`
}

// RelayConfig selects how chat messages are answered.
type RelayConfig struct {
	Mock        bool          `yaml:"mock"` // answer from built-in demos, no API calls
	Model       string        `yaml:"model"`
	APIKey      string        `yaml:"api_key"`
	URL         string        `yaml:"url"` // chat completions endpoint
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
}

// ViewerConfig holds terminal client settings.
type ViewerConfig struct {
	RelayURL       string        `yaml:"relay_url"` // empty runs the relay in-process
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":3000",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 90 * time.Second,
			AllowOrigins: []string{"*"},
			RateLimit:    1,
			RateBurst:    5,
		},
		Relay: RelayConfig{
			Mock:        true,
			Model:       "gpt-4o-mini",
			URL:         "https://api.openai.com/v1/chat/completions",
			Temperature: 0.7,
			MaxTokens:   2000,
			Timeout:     60 * time.Second,
		},
		Viewer: ViewerConfig{
			RelayURL:       "",
			RequestTimeout: 90 * time.Second,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr: must not be empty")
	}
	if c.Server.RateLimit < 0 || c.Server.RateBurst < 0 {
		return fmt.Errorf("server.rate_limit: must not be negative")
	}
	if c.Relay.Temperature < 0 || c.Relay.Temperature > 2 {
		return fmt.Errorf("relay.temperature: %v outside [0, 2]", c.Relay.Temperature)
	}
	if c.Relay.MaxTokens < 0 {
		return fmt.Errorf("relay.max_tokens: must not be negative")
	}
	if !c.Relay.Mock && c.Relay.Model == "" {
		return fmt.Errorf("relay.model: required unless relay.mock is set")
	}
	return nil
}
