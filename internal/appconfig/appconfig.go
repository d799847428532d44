package appconfig

import (
	"bytes"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration details
type Config struct {
	Host     string         `yaml:"host"`
	Backend  BackendConfig  `yaml:"backend"`
	Frontend FrontendConfig `yaml:"frontend"`
}

// BackendConfig defines the static payload served by the backend routes
type BackendConfig struct {
	StatusMessage string   `yaml:"statusMessage"`
	DataMessage   string   `yaml:"dataMessage"`
	Users         []string `yaml:"users"`
}

// FrontendConfig defines how the frontend reaches the backend
type FrontendConfig struct {
	BackendURL          string `yaml:"backendUrl"`
	FetchTimeoutSeconds int    `yaml:"fetchTimeoutSeconds"`
}

// FetchTimeout returns the bound on the frontend's outbound backend call.
func (f FrontendConfig) FetchTimeout() time.Duration {
	return time.Duration(f.FetchTimeoutSeconds) * time.Second
}

// DefaultConfig returns the compiled-in configuration used when no config file
// is provided. The backend address honours the BACKEND_URL environment
// variable so the deployed frontend can be pointed at the internal tier.
func DefaultConfig() *Config {
	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:5000"
	}

	return &Config{
		Host: "0.0.0.0",
		Backend: BackendConfig{
			StatusMessage: "Backend is up and running",
			DataMessage:   "Hello from the backend!",
			Users:         []string{"Alice", "Bob", "Charlie"},
		},
		Frontend: FrontendConfig{
			BackendURL:          backendURL,
			FetchTimeoutSeconds: 5,
		},
	}
}

// LoadConfig loads and parses the configuration from a given file path. An
// empty path falls back to DefaultConfig. Values missing from the file keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		log.Debug().Msg("no config file provided, using default configuration")
		return DefaultConfig(), nil
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Error().Err(err).Msg("error parsing config file template")
		return nil, err
	}

	// Create a map of environment variables
	envVars := loadEnvVars()

	// Execute the template with environment variables
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, envVars)
	if err != nil {
		log.Error().Err(err).Msg("error executing config file template")
		return nil, err
	}

	// Load and unmarshal the YAML over the defaults
	config := DefaultConfig()
	if err := yaml.Unmarshal(buf.Bytes(), config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal config YAML")
		return nil, err
	}

	return config, nil
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
