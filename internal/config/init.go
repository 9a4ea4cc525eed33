package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Init writes an example configuration file to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		Provider: ProviderConfig{
			APIKey: "${DOCUGEN_PROVIDER_API_KEY}",
			Model:  DefaultModel,
		},
		Remote: RemoteConfig{
			BaseURL: "https://kb.example.com/api",
			Token:   "${DOCUGEN_REMOTE_TOKEN}",
			Space:   "engineering-docs",
		},
		Input: InputConfig{
			MinTextLength: DefaultMinTextLength,
			AllowedHosts:  DefaultAllowedHosts,
		},
		Server: ServerConfig{
			Addr:    DefaultServerAddr,
			Metrics: true,
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}

	header := "# docugen configuration\n# Secrets may reference environment variables (${VAR}) or live in .env\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
