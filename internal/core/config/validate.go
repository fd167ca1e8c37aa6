package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/hwbot/internal/core/homework"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("endpoint", c.Endpoint, httpURL),
		criterio.Run("poll.interval", c.Poll.Interval, atLeast(time.Second)),
		criterio.Run("poll.timeout", c.Poll.Timeout, positive),
		criterio.Run("poll.lookback", c.Poll.Lookback, notNegative),
		criterio.Run("telegram.api_url", c.Telegram.APIURL, httpURL),
		criterio.Run("telegram.timeout", c.Telegram.Timeout, positive),
		criterio.Run("filters.include", c.Filters.Include, homework.ValidatePatterns),
		criterio.Run("filters.exclude", c.Filters.Exclude, homework.ValidatePatterns),
		c.validateMessages(),
	)
}

func (c *Config) validateMessages() error {
	var errs criterio.FieldErrorsBuilder
	checks := map[string]homework.Templates{
		"messages.changed": {Changed: c.Messages.Changed},
		"messages.unknown": {Unknown: c.Messages.Unknown},
		"messages.failure": {Failure: c.Messages.Failure},
	}
	for field, t := range checks {
		if err := homework.ValidateTemplates(t); err != nil {
			errs = errs.Append(field, fmt.Errorf("template error: %w", err))
		}
	}
	return errs.ToError()
}

// httpURL validates an absolute http or https URL.
func httpURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url must use http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url has no host: %q", raw)
	}
	return nil
}

func atLeast(minimum time.Duration) func(time.Duration) error {
	return func(d time.Duration) error {
		if d < minimum {
			return fmt.Errorf("must be at least %s", minimum)
		}
		return nil
	}
}

func positive(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func notNegative(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("cannot be negative")
	}
	return nil
}
