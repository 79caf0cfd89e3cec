package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the application configuration
type Config struct {
	Provider string
	DSN      string
	Debug    bool
}

// LoadConfig loads configuration from config file, environment and .env
// files. Every value has a default, so the zero-argument run reads no
// external input: an in-memory SQLite database.
func LoadConfig() (*Config, error) {
	// Find home directory
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	// Set config file paths
	viper.SetConfigName(".climasql")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "climasql"))

	// Set environment variable prefix
	viper.SetEnvPrefix("CLIMASQL")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("provider", "sqlite")
	viper.SetDefault("dsn", ":memory:")
	viper.SetDefault("debug", false)

	// Try to read config file (ignore if not found)
	_ = viper.ReadInConfig()

	// Load .env file if it exists
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	// Load .env.local if it exists (higher priority)
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		Provider: viper.GetString("provider"),
		DSN:      viper.GetString("dsn"),
		Debug:    viper.GetBool("debug"),
	}

	return cfg, nil
}
