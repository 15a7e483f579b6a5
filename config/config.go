package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads the configuration from the environment and an optional file.
// A config file is never required: FREELO_EMAIL and FREELO_API_KEY alone
// are a complete configuration. When both a file and the environment set
// a value, the environment wins.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Read in environment variables that match
	v.SetEnvPrefix("FREELO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential variables are documented without the section part.
	_ = v.BindEnv("freelo.email", "FREELO_EMAIL")
	_ = v.BindEnv("freelo.api_key", "FREELO_API_KEY")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".freelo-mcp"))
		}

		// Check /etc
		v.AddConfigPath("/etc/freelo-mcp/")
	}

	// Read config file. A missing file in the search paths is fine
	// (environment-only operation); an explicitly given path must exist.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	// Update defaults
	v.SetDefault("update.repo", "freelodev/freelo-mcp")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Freelo.Email == "" {
		return fmt.Errorf("freelo.email is required (set FREELO_EMAIL or freelo.email in the config file)")
	}

	if cfg.Freelo.APIKey == "" || cfg.Freelo.APIKey == "your-api-key-here" {
		return fmt.Errorf("freelo.api_key must be set to a valid API key (set FREELO_API_KEY or freelo.api_key in the config file)")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
