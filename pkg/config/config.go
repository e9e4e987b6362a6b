// Package config holds the client configuration loaded by miden-cli.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Version is the version of the tool, set at build time.
var Version = "dev"

// Config is the top level structure of a client configuration file.
type Config struct {
	// Endpoint is the node address: host:port or a grpc(s):// URL.
	Endpoint string `yaml:"Endpoint"`
	// DialTimeout bounds the connection handshake.
	DialTimeout time.Duration `yaml:"DialTimeout"`
	// RequestTimeout bounds individual CLI requests.
	RequestTimeout time.Duration `yaml:"RequestTimeout"`
	// CACert optionally names an extra PEM root certificate to trust.
	CACert string `yaml:"CACert"`
	// Insecure disables TLS for bare host:port endpoints.
	Insecure bool `yaml:"Insecure"`
	// LogLevel sets the CLI log level (zap level names).
	LogLevel string `yaml:"LogLevel"`
}

// LoadFile parses the YAML configuration at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return cfg, nil
}
