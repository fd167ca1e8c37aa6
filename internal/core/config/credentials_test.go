package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_AllPresent(t *testing.T) {
	full := Credentials{PracticumToken: "p", TelegramToken: "t", ChatID: "42"}
	assert.True(t, full.AllPresent())
	require.NoError(t, full.Require(true))

	missingChat := full
	missingChat.ChatID = "  "
	assert.False(t, missingChat.AllPresent())
}

func TestCredentials_Require(t *testing.T) {
	err := Credentials{}.Require(true)
	require.ErrorIs(t, err, ErrConfigMissing)
	assert.ElementsMatch(t, []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"}, missingFields(t, err))

	// dry runs only need the API token
	require.NoError(t, Credentials{PracticumToken: "p"}.Require(false))

	err = Credentials{TelegramToken: "t", ChatID: "1"}.Require(false)
	require.ErrorIs(t, err, ErrConfigMissing)
	assert.Equal(t, []string{"PRACTICUM_TOKEN"}, missingFields(t, err))
}

func missingFields(t *testing.T, err error) []string {
	t.Helper()
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	return fields
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "***", Mask("abc"))
	assert.Equal(t, "****5678", Mask("12345678"))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("HWBOT_TEST_FROM_FILE=file\nHWBOT_TEST_PRESET=file\n"), 0o600))

	t.Setenv("HWBOT_TEST_PRESET", "env")
	t.Setenv("HWBOT_TEST_FROM_FILE", "")
	require.NoError(t, os.Unsetenv("HWBOT_TEST_FROM_FILE"))

	require.NoError(t, LoadEnvFile(path))

	assert.Equal(t, "file", os.Getenv("HWBOT_TEST_FROM_FILE"))
	assert.Equal(t, "env", os.Getenv("HWBOT_TEST_PRESET"), "existing variables win")

	require.NoError(t, LoadEnvFile(filepath.Join(dir, "missing.env")))
	require.NoError(t, LoadEnvFile(""))
}

func TestCredentials_FillFromEnv(t *testing.T) {
	t.Setenv("PRACTICUM_TOKEN", "")
	t.Setenv("TOKEN_PRAKTIKUM", "legacy-practicum")
	t.Setenv("TELEGRAM_TOKEN", "env-telegram")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	t.Setenv("CHAT_ID", "")

	creds := Credentials{TelegramToken: "flag-telegram"}.FillFromEnv()

	assert.Equal(t, "legacy-practicum", creds.PracticumToken)
	assert.Equal(t, "flag-telegram", creds.TelegramToken, "explicit values win")
	assert.Empty(t, creds.ChatID)
}
