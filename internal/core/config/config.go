// Package config handles configuration loading and validation for hwbot.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/hwbot/internal/core/homework"
)

// Defaults for the upstream services.
const (
	DefaultEndpoint       = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultTelegramAPIURL = "https://api.telegram.org"
)

// Config holds the application configuration.
type Config struct {
	Endpoint string         `yaml:"endpoint"`
	Poll     PollConfig     `yaml:"poll"`
	Telegram TelegramConfig `yaml:"telegram"`
	Notify   NotifyConfig   `yaml:"notify"`
	Filters  FilterConfig   `yaml:"filters"`
	Messages MessageConfig  `yaml:"messages"`

	Credentials Credentials `yaml:"-"` // set by caller from env and flags
}

// PollConfig controls the polling cadence against the status API.
type PollConfig struct {
	Interval time.Duration `yaml:"interval"` // fixed sleep between iterations
	Timeout  time.Duration `yaml:"timeout"`  // per-request timeout
	Lookback time.Duration `yaml:"lookback"` // first window starts this far before startup
}

// TelegramConfig holds bot API settings. The token and chat id are credentials.
type TelegramConfig struct {
	APIURL  string        `yaml:"api_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// NotifyConfig toggles optional notifications.
type NotifyConfig struct {
	// Errors sends iteration failure reports to the chat, skipping repeats
	// of the previous report.
	Errors bool `yaml:"errors"`
}

// FilterConfig selects which homeworks are tracked by name.
type FilterConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// MessageConfig overrides the notification templates.
type MessageConfig struct {
	Changed string `yaml:"changed"`
	Unknown string `yaml:"unknown"`
	Failure string `yaml:"failure"`
}

// Templates converts the message config for the formatter.
func (m MessageConfig) Templates() homework.Templates {
	return homework.Templates{Changed: m.Changed, Unknown: m.Unknown, Failure: m.Failure}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		Poll: PollConfig{
			Interval: 600 * time.Second,
			Timeout:  30 * time.Second,
		},
		Telegram: TelegramConfig{
			APIURL:  DefaultTelegramAPIURL,
			Timeout: 30 * time.Second,
		},
		Messages: MessageConfig{
			Changed: homework.DefaultChangedTemplate,
			Unknown: homework.DefaultUnknownTemplate,
			Failure: homework.DefaultFailureTemplate,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Endpoint == "" {
		c.Endpoint = defaults.Endpoint
	}
	if c.Poll.Interval == 0 {
		c.Poll.Interval = defaults.Poll.Interval
	}
	if c.Poll.Timeout == 0 {
		c.Poll.Timeout = defaults.Poll.Timeout
	}
	if c.Telegram.APIURL == "" {
		c.Telegram.APIURL = defaults.Telegram.APIURL
	}
	if c.Telegram.Timeout == 0 {
		c.Telegram.Timeout = defaults.Telegram.Timeout
	}
	if c.Messages.Changed == "" {
		c.Messages.Changed = defaults.Messages.Changed
	}
	if c.Messages.Unknown == "" {
		c.Messages.Unknown = defaults.Messages.Unknown
	}
	if c.Messages.Failure == "" {
		c.Messages.Failure = defaults.Messages.Failure
	}
}
