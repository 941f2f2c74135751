// Package config loads the GoMatch server configuration.
//
// Values come, in increasing precedence, from built-in defaults, an optional
// configuration file and GOMATCH_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "GOMATCH"

// Config holds the server settings.
type Config struct {
	// Addr to listen on. Empty means an automatically chosen port on localhost.
	Addr string `mapstructure:"addr" validate:"omitempty,hostname_port"`
	// WebDir holds the static assets served under /web/, including app.wasm.
	WebDir  string `mapstructure:"web_dir" validate:"required"`
	AppName string `mapstructure:"app_name" validate:"required"`
	// ShutdownTimeout bounds the graceful shutdown once the server is asked to stop.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

var defaults = map[string]any{
	"addr":             "",
	"web_dir":          "web",
	"app_name":         "GoMatch",
	"shutdown_timeout": 5 * time.Second,
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		WebDir:          defaults["web_dir"].(string),
		AppName:         defaults["app_name"].(string),
		ShutdownTimeout: defaults["shutdown_timeout"].(time.Duration),
	}
}

// Load reads the configuration. configFile is optional; when given it must
// exist and parse.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configFile, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field of the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
