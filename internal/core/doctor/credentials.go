package doctor

import (
	"context"

	"github.com/hay-kot/hwbot/internal/core/config"
)

// CredentialsCheck reports which credentials are set, masking their values.
type CredentialsCheck struct {
	creds        config.Credentials
	withTelegram bool
}

// NewCredentialsCheck creates a credentials check. Missing Telegram
// credentials only warn when withTelegram is false (dry runs).
func NewCredentialsCheck(creds config.Credentials, withTelegram bool) *CredentialsCheck {
	return &CredentialsCheck{creds: creds, withTelegram: withTelegram}
}

func (c *CredentialsCheck) Name() string {
	return "Credentials"
}

func (c *CredentialsCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	missing := StatusWarn
	if c.withTelegram {
		missing = StatusFail
	}

	result.Items = append(result.Items,
		secretItem(config.EnvPracticumToken[0], c.creds.PracticumToken, StatusFail),
		secretItem(config.EnvTelegramToken[0], c.creds.TelegramToken, missing),
		plainItem(config.EnvTelegramChatID[0], c.creds.ChatID, missing),
	)

	return result
}

func secretItem(label, value string, missing Status) CheckItem {
	if value == "" {
		return CheckItem{Label: label, Status: missing, Detail: "not set"}
	}
	return CheckItem{Label: label, Status: StatusPass, Detail: config.Mask(value)}
}

func plainItem(label, value string, missing Status) CheckItem {
	if value == "" {
		return CheckItem{Label: label, Status: missing, Detail: "not set"}
	}
	return CheckItem{Label: label, Status: StatusPass, Detail: value}
}
