package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents the configuration required for the dp-qri-client
type Config struct {
	Backend        BackendName   `envconfig:"QRI_BACKEND"`
	QriBinary      string        `envconfig:"QRI_BINARY"`
	CloudAPIURL    string        `envconfig:"QRI_CLOUD_API_URL"`
	CloudUsername  string        `envconfig:"QRI_CLOUD_USERNAME"`
	CommandTimeout time.Duration `envconfig:"QRI_COMMAND_TIMEOUT"`
	HTTPTimeout    time.Duration `envconfig:"QRI_HTTP_TIMEOUT"`
	Verbose        bool          `envconfig:"QRI_VERBOSE"`
}

// BackendName forces the choice of backend. The empty value means the
// backend is chosen by looking for the qri binary.
type BackendName string

// Accepted backend names.
const (
	AutoBackend  BackendName = ""
	LocalBackend BackendName = "local"
	CloudBackend BackendName = "cloud"
)

// Decode implements envconfig.Decoder
func (b *BackendName) Decode(value string) error {
	switch BackendName(value) {
	case AutoBackend, LocalBackend, CloudBackend:
		*b = BackendName(value)
		return nil
	}
	return fmt.Errorf("unknown backend %q, expected %q or %q", value, LocalBackend, CloudBackend)
}

var cfg *Config

// Get retrieves the config from the environment for the dp-qri-client
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		Backend:        AutoBackend,
		QriBinary:      "qri",
		CloudAPIURL:    "https://api.qri.cloud",
		CloudUsername:  "",
		CommandTimeout: 5 * time.Minute,
		HTTPTimeout:    30 * time.Second,
		Verbose:        false,
	}

	return cfg, envconfig.Process("", cfg)
}
