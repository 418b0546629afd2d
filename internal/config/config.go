package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "CLIENTS_"

// Config is the process configuration, read from the environment.
type Config struct {
	File      string `mapstructure:"file"`       // path to the clients records file
	Addr      string `mapstructure:"addr"`       // HTTP listen address for serve
	LogLevel  string `mapstructure:"log_level"`  // DEBUG, INFO, WARN, ERROR
	LogFormat string `mapstructure:"log_format"` // json, text
}

// Load reads configuration from an optional .env file and CLIENTS_-prefixed
// environment variables (e.g. CLIENTS_FILE, CLIENTS_LOG_LEVEL).
func Load() (Config, error) {
	v := viper.New()

	// .env is optional; environment variables alone are fine.
	v.SetConfigFile(".env")
	_ = v.ReadInConfig()

	v.SetDefault("file", "clients_info.txt")
	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "INFO")
	v.SetDefault("log_format", "text")

	for _, envStr := range os.Environ() {
		pair := strings.SplitN(envStr, "=", 2)
		key, value := pair[0], pair[1]
		if strings.HasPrefix(key, envPrefix) {
			propKey := strings.ToLower(strings.TrimPrefix(key, envPrefix))
			v.Set(propKey, value)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
