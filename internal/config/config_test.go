package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Addr != ":3000" {
		t.Errorf("expected addr :3000, got %s", cfg.Server.Addr)
	}
	if len(cfg.Server.AllowOrigins) != 1 || cfg.Server.AllowOrigins[0] != "*" {
		t.Errorf("expected all origins allowed, got %v", cfg.Server.AllowOrigins)
	}

	if !cfg.Relay.Mock {
		t.Error("expected mock relay by default")
	}
	if cfg.Relay.Model != "gpt-4o-mini" {
		t.Errorf("expected model gpt-4o-mini, got %s", cfg.Relay.Model)
	}
	if cfg.Relay.Timeout != 60*time.Second {
		t.Errorf("expected relay timeout 60s, got %v", cfg.Relay.Timeout)
	}
	if cfg.Relay.APIKey != "" {
		t.Error("expected no API key by default")
	}

	if cfg.Viewer.RelayURL != "" {
		t.Errorf("expected in-process relay by default, got %s", cfg.Viewer.RelayURL)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
server:
  addr: "127.0.0.1:8080"
  read_timeout: 5s
  allow_origins: ["http://localhost:5173"]

relay:
  mock: false
  model: "gpt-4"
  temperature: 0.2
  max_tokens: 1500
  timeout: 30s

viewer:
  relay_url: "http://localhost:8080"
  request_timeout: 45s

logging:
  level: "debug"
  log_file: "relay.log"
  json: true
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("expected addr 127.0.0.1:8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("expected read timeout 5s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 90*time.Second {
		t.Errorf("expected default write timeout kept, got %v", cfg.Server.WriteTimeout)
	}
	if len(cfg.Server.AllowOrigins) != 1 || cfg.Server.AllowOrigins[0] != "http://localhost:5173" {
		t.Errorf("unexpected origins %v", cfg.Server.AllowOrigins)
	}

	if cfg.Relay.Mock {
		t.Error("expected mock to be false")
	}
	if cfg.Relay.Model != "gpt-4" {
		t.Errorf("expected model gpt-4, got %s", cfg.Relay.Model)
	}
	if cfg.Relay.Temperature != 0.2 {
		t.Errorf("expected temperature 0.2, got %v", cfg.Relay.Temperature)
	}
	if cfg.Relay.MaxTokens != 1500 {
		t.Errorf("expected max tokens 1500, got %d", cfg.Relay.MaxTokens)
	}
	if cfg.Relay.Timeout != 30*time.Second {
		t.Errorf("expected relay timeout 30s, got %v", cfg.Relay.Timeout)
	}

	if cfg.Viewer.RelayURL != "http://localhost:8080" {
		t.Errorf("expected relay url http://localhost:8080, got %s", cfg.Viewer.RelayURL)
	}
	if cfg.Viewer.RequestTimeout != 45*time.Second {
		t.Errorf("expected request timeout 45s, got %v", cfg.Viewer.RequestTimeout)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "relay.log" {
		t.Errorf("expected log file 'relay.log', got %s", cfg.Logging.LogFile)
	}
	if !cfg.Logging.JSON {
		t.Error("expected json logging")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
relay:
  max_tokens: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"hot temperature", func(c *Config) { c.Relay.Temperature = 3 }, "relay.temperature"},
		{"negative tokens", func(c *Config) { c.Relay.MaxTokens = -1 }, "relay.max_tokens"},
		{"no model", func(c *Config) { c.Relay.Mock = false; c.Relay.Model = "" }, "relay.model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.HasPrefix(err.Error(), tt.field) {
				t.Errorf("expected error about %s, got %v", tt.field, err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  addr: \":9000\"\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(APIKeyEnv, "sk-from-env")

	cfg := Default()
	cfg.Relay.APIKey = "sk-from-file"
	applyEnv(cfg)

	if cfg.Relay.APIKey != "sk-from-env" {
		t.Errorf("expected env key to win, got %s", cfg.Relay.APIKey)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "addr flag",
			setup: func() { *flagAddr = ":7000" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Server.Addr != ":7000" {
					t.Errorf("expected addr :7000, got %s", cfg.Server.Addr)
				}
			},
			teardown: func() { *flagAddr = "" },
		},
		{
			name:  "mock flag off",
			setup: func() { mockGiven, *flagMock = true, false },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Relay.Mock {
					t.Error("expected -mock=false to disable mock mode")
				}
			},
			teardown: func() { mockGiven = false },
		},
		{
			name:  "mock flag absent",
			setup: func() { *flagMock = false },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Relay.Mock {
					t.Error("expected the default mock mode to survive an absent flag")
				}
			},
			teardown: func() {},
		},
		{
			name:  "relay url flag",
			setup: func() { *flagRelayURL = "http://relay.local:3000" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Viewer.RelayURL != "http://relay.local:3000" {
					t.Errorf("expected relay url override, got %s", cfg.Viewer.RelayURL)
				}
			},
			teardown: func() { *flagRelayURL = "" },
		},
		{
			name:  "model flag",
			setup: func() { *flagModel = "gpt-4o" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Relay.Model != "gpt-4o" {
					t.Errorf("expected model gpt-4o, got %s", cfg.Relay.Model)
				}
			},
			teardown: func() { *flagModel = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
server:
  addr: ":4000"
relay:
  mock: false
  model: "gpt-4"
  api_key: "sk-from-file"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv(APIKeyEnv, "sk-from-env")
	*flagConfig = configPath
	*flagModel = "gpt-4o"
	defer func() {
		*flagConfig = ""
		*flagModel = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Model from flag, not file
	if cfg.Relay.Model != "gpt-4o" {
		t.Errorf("expected model gpt-4o from flag, got %s", cfg.Relay.Model)
	}
	// Addr from file since no flag override
	if cfg.Server.Addr != ":4000" {
		t.Errorf("expected addr :4000 from file, got %s", cfg.Server.Addr)
	}
	if cfg.Relay.APIKey != "sk-from-env" {
		t.Errorf("expected API key from env, got %s", cfg.Relay.APIKey)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("logging:\n  level: loud\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected invalid level to fail Load")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Server.Addr = ":5555"
	cfg.Relay.APIKey = "sk-secret"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if strings.Contains(string(data), "sk-secret") {
		t.Error("API key written to disk")
	}
	if cfg.Relay.APIKey != "sk-secret" {
		t.Error("SaveTo modified the receiver")
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Server.Addr != ":5555" {
		t.Errorf("expected addr :5555 after reload, got %s", loaded.Server.Addr)
	}
	if loaded.Relay.Timeout != cfg.Relay.Timeout {
		t.Errorf("timeout did not round-trip: %v vs %v", loaded.Relay.Timeout, cfg.Relay.Timeout)
	}
}
