// Package config loads and validates docugen configuration from YAML with
// environment overlays.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docugen/internal/errors"
)

// Config represents the application configuration
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Remote   RemoteConfig   `yaml:"remote"`
	Input    InputConfig    `yaml:"input"`
	Server   ServerConfig   `yaml:"server"`
}

// ProviderConfig holds credentials and model selection for the generation
// capability. It is passed explicitly into the capability constructor, never
// read as process-wide ambient state.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// RemoteConfig holds the documentation-space target for remote export.
type RemoteConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
	Token   string `yaml:"token,omitempty"`
	Space   string `yaml:"space,omitempty"`
}

// InputConfig tunes submission validation.
type InputConfig struct {
	MinTextLength int      `yaml:"min_text_length,omitempty"`
	AllowedHosts  []string `yaml:"allowed_hosts,omitempty"`
	VerifyURL     bool     `yaml:"verify_url,omitempty"`
}

// ServerConfig configures the HTTP API surface.
type ServerConfig struct {
	Addr    string `yaml:"addr,omitempty"`
	Metrics bool   `yaml:"metrics,omitempty"`
}

// Environment variable names honored as overrides for secret-bearing fields.
const (
	EnvProviderAPIKey = "DOCUGEN_PROVIDER_API_KEY"
	EnvProviderModel  = "DOCUGEN_PROVIDER_MODEL"
	EnvRemoteToken    = "DOCUGEN_REMOTE_TOKEN"
	EnvRemoteSpace    = "DOCUGEN_REMOTE_SPACE"
)

const (
	DefaultModel         = "gpt-4o-mini"
	DefaultMinTextLength = 50
	DefaultServerAddr    = ":8475"
)

// DefaultAllowedHosts are the repository hosts accepted for URL submissions
// when the config does not name its own list.
var DefaultAllowedHosts = []string{"github.com", "gitlab.com"}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists; godotenv never overrides existing env vars.
	if err := godotenv.Load(".env", ".env.local"); err != nil {
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, derrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "failed to read config file")
	}

	return Parse(data)
}

// Parse decodes YAML config data, expanding environment variable references
// in the body and applying env overrides and defaults.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "failed to parse config file")
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvProviderAPIKey); v != "" {
		c.Provider.APIKey = v
	}
	if v := os.Getenv(EnvProviderModel); v != "" {
		c.Provider.Model = v
	}
	if v := os.Getenv(EnvRemoteToken); v != "" {
		c.Remote.Token = v
	}
	if v := os.Getenv(EnvRemoteSpace); v != "" {
		c.Remote.Space = v
	}
}

func (c *Config) applyDefaults() {
	if c.Provider.Model == "" {
		c.Provider.Model = DefaultModel
	}
	if c.Input.MinTextLength <= 0 {
		c.Input.MinTextLength = DefaultMinTextLength
	}
	if len(c.Input.AllowedHosts) == 0 {
		c.Input.AllowedHosts = append([]string(nil), DefaultAllowedHosts...)
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
}

// ValidateForGeneration checks that the generation capability can be
// constructed from this config.
func (c *Config) ValidateForGeneration() error {
	if c.Provider.APIKey == "" {
		return derrors.ConfigMissing("provider.api_key")
	}
	if c.Provider.Model == "" {
		return derrors.ConfigMissing("provider.model")
	}
	return nil
}

// ValidateForRemoteExport checks the remote-push prerequisites. Missing
// credentials fail the export before any network call is attempted.
func (c *Config) ValidateForRemoteExport() error {
	if c.Remote.BaseURL == "" {
		return derrors.ConfigMissing("remote.base_url")
	}
	if c.Remote.Token == "" {
		return derrors.ConfigMissing("remote.token")
	}
	if c.Remote.Space == "" {
		return derrors.ConfigMissing("remote.space")
	}
	return nil
}
