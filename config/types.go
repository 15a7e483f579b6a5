package config

// Config represents the complete configuration structure
type Config struct {
	Freelo  FreeloConfig  `mapstructure:"freelo"`
	Logging LoggingConfig `mapstructure:"logging"`
	Update  UpdateConfig  `mapstructure:"update"`
}

// FreeloConfig holds the Freelo API credentials
type FreeloConfig struct {
	Email  string `mapstructure:"email"`
	APIKey string `mapstructure:"api_key"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// UpdateConfig holds self-update settings
type UpdateConfig struct {
	Repo string `mapstructure:"repo"`
}
