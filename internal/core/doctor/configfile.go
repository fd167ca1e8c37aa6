package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hay-kot/hwbot/internal/core/config"
)

// ConfigCheck verifies the config file and its settings.
type ConfigCheck struct {
	path string
}

// NewConfigCheck creates a config check for the file at path.
func NewConfigCheck(path string) *ConfigCheck {
	return &ConfigCheck{path: path}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	info, err := os.Stat(c.path)
	switch {
	case c.path == "" || errors.Is(err, os.ErrNotExist):
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusPass,
			Detail: "not found, using defaults",
		})
	case err != nil:
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusFail,
			Detail: fmt.Sprintf("cannot access: %v", err),
		})
		return result
	case info.IsDir():
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusFail,
			Detail: c.path + " is a directory",
		})
		return result
	default:
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusPass,
			Detail: c.path,
		})
	}

	cfg, err := config.Load(c.path)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "settings",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	result.Items = append(result.Items,
		CheckItem{Label: "endpoint", Status: StatusPass, Detail: cfg.Endpoint},
		CheckItem{Label: "poll interval", Status: StatusPass, Detail: cfg.Poll.Interval.String()},
	)

	if cfg.Poll.Interval < config.DefaultConfig().Poll.Interval {
		result.Items[len(result.Items)-1].Status = StatusWarn
		result.Items[len(result.Items)-1].Detail += " (shorter than the default, the API may rate limit)"
	}

	return result
}
