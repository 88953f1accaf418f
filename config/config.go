package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	QuoteExpirySeconds int
	QuoteDelay         time.Duration
	ConnectDelay       time.Duration
	StageInterval      time.Duration
	SeedCount          int
	ListenAddr         string
	SettingsFile       string
}

// Load reads configuration from environment variables and config file.
// Every key has a default; a missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".bridgeswap")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME")
	v.AddConfigPath(".")

	// Set default values
	v.SetDefault("quote_expiry_seconds", 600)
	v.SetDefault("quote_delay", "2s")
	v.SetDefault("connect_delay", "1s")
	v.SetDefault("stage_interval", "5s")
	v.SetDefault("seed_count", 65)
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("settings_file", "bridgeless-swap-settings.json")

	// Read from environment variables
	v.SetEnvPrefix("BRIDGESWAP")
	v.AutomaticEnv()

	// Read config file (optional)
	_ = v.ReadInConfig()

	return &Config{
		QuoteExpirySeconds: v.GetInt("quote_expiry_seconds"),
		QuoteDelay:         v.GetDuration("quote_delay"),
		ConnectDelay:       v.GetDuration("connect_delay"),
		StageInterval:      v.GetDuration("stage_interval"),
		SeedCount:          v.GetInt("seed_count"),
		ListenAddr:         v.GetString("listen_addr"),
		SettingsFile:       v.GetString("settings_file"),
	}, nil
}
