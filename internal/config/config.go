// Package config loads the bridge configuration from environment
// variables (PANOPTIKAUTH_ prefix) using koanf.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PANOPTIKAUTH_"

// Config is the full configuration surface. Channel credentials are
// optional: an unconfigured channel answers 503, it does not prevent
// startup.
type Config struct {
	ServerPort   string `koanf:"server_port" validate:"required"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout int    `koanf:"write_timeout" validate:"gte=0"`

	GotifyURL   string `koanf:"gotify_url" validate:"omitempty,url"`
	GotifyToken string `koanf:"gotify_token"`

	SlackToken string `koanf:"slack_token"`
	SlackTitle string `koanf:"slack_title"`
}

// Load reads PANOPTIKAUTH_* environment variables, applies defaults and
// validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.applyDefaults()

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ServerPort == "" {
		c.ServerPort = "8080"
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 15
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 15
	}
	if c.SlackTitle == "" {
		c.SlackTitle = "Slack Notification"
	}
}
