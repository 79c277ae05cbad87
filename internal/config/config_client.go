package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the command-line client.
type ClientConfig struct {
	// ServerURL is the base URL of the asset server.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"CLIENT_SERVER_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CLIENT_REQUEST_TIMEOUT"`

	// LogLevel is a zerolog level name.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"CLIENT_LOG_LEVEL"`
}

const defaultServerURL = "http://localhost:8080"

// GetClientConfig loads the client configuration from the environment and
// from args (usually os.Args[1:]). Environment values win over flags. The
// positional arguments left after the flags are returned as the command.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagCfg, defaultClientConfig()} {
		if err = mergo.Merge(cfg, src); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, rest, cfg.validate()
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerURL:      defaultServerURL,
		RequestTimeout: defaultRequestTimeout,
		LogLevel:       "warn",
	}
}

func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.ServerURL, "server", "", "Asset server base URL")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}

// ClientUsage describes the client command line.
func ClientUsage() string {
	return fmt.Sprintf(`usage: %s [-server URL] [-timeout D] [-log-level L] <command>

commands:
  list          print every stored asset
  get NAME      print a single asset
  create FILE   create the assets listed in a JSON file ({"assets": [...]}), "-" reads stdin
  version       print client and server versions
`, os.Args[0])
}
