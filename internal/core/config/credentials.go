package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/subosito/gotenv"
)

// ErrConfigMissing is returned when required credentials are absent.
var ErrConfigMissing = errors.New("required credentials missing")

// Environment variable names for credentials. The second name of each pair
// is the legacy spelling, still honored.
var (
	EnvPracticumToken = []string{"PRACTICUM_TOKEN", "TOKEN_PRAKTIKUM"}
	EnvTelegramToken  = []string{"TELEGRAM_TOKEN", "TOKEN_TELEGRAM"}
	EnvTelegramChatID = []string{"TELEGRAM_CHAT_ID", "CHAT_ID"}
)

// Credentials are the secrets needed to poll and to notify.
type Credentials struct {
	PracticumToken string
	TelegramToken  string
	ChatID         string
}

// AllPresent reports whether every credential is set.
func (c Credentials) AllPresent() bool {
	return c.Require(true) == nil
}

// Require returns an error wrapping ErrConfigMissing naming each missing
// credential. Telegram credentials are skipped when withTelegram is false.
func (c Credentials) Require(withTelegram bool) error {
	errs := []error{
		criterio.Run(EnvPracticumToken[0], c.PracticumToken, present),
	}
	if withTelegram {
		errs = append(errs,
			criterio.Run(EnvTelegramToken[0], c.TelegramToken, present),
			criterio.Run(EnvTelegramChatID[0], c.ChatID, present),
		)
	}

	if err := criterio.ValidateStruct(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigMissing, err)
	}
	return nil
}

// FillFromEnv returns c with empty fields taken from the environment. Used
// after a dotenv file is loaded, since flag sources are read before that.
func (c Credentials) FillFromEnv() Credentials {
	if c.PracticumToken == "" {
		c.PracticumToken = lookupEnv(EnvPracticumToken)
	}
	if c.TelegramToken == "" {
		c.TelegramToken = lookupEnv(EnvTelegramToken)
	}
	if c.ChatID == "" {
		c.ChatID = lookupEnv(EnvTelegramChatID)
	}
	return c
}

func lookupEnv(names []string) string {
	for _, name := range names {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			return v
		}
	}
	return ""
}

func present(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("not set")
	}
	return nil
}

// Mask hides all but the last four characters of a secret.
func Mask(secret string) string {
	const visible = 4
	if len(secret) <= visible {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-visible) + secret[len(secret)-visible:]
}

// LoadEnvFile exports variables from a dotenv file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := gotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}
