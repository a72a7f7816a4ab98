package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagAddr     = flag.String("addr", "", "Relay server listen address")
	flagMock     = flag.Bool("mock", false, "Answer from built-in demos; -mock=false calls the model API")
	flagRelayURL = flag.String("relay-url", "", "Relay server base URL (empty runs the relay in-process)")
	flagModel    = flag.String("model", "", "Model name for the chat completions API")
)

// mockGiven records whether -mock appeared on the command line, so that
// -mock=false can override a config file.
var mockGiven bool

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
	mockGiven = flagSet("mock")
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagAddr != "" {
		cfg.Server.Addr = *flagAddr
	}
	if mockGiven {
		cfg.Relay.Mock = *flagMock
	}
	if *flagRelayURL != "" {
		cfg.Viewer.RelayURL = *flagRelayURL
	}
	if *flagModel != "" {
		cfg.Relay.Model = *flagModel
	}
}
