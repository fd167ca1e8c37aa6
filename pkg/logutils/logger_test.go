package logutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hwbot.log")

	logger, closer, err := New("info", path, FormatJSON)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("homework", "hw1").Msg("visible")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "hw1", entry["homework"])
	assert.Contains(t, entry, "time")
}

func TestNew_AutoUsesJSONForFiles(t *testing.T) {
	prev := isTerminal
	t.Cleanup(func() { isTerminal = prev })
	isTerminal = func(*os.File) bool { return false }

	path := filepath.Join(t.TempDir(), "hwbot.log")
	logger, closer, err := New("debug", path, FormatAuto)
	require.NoError(t, err)

	logger.Info().Msg("line")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(strings.TrimSpace(string(data)))))
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNew_InvalidInput(t *testing.T) {
	_, _, err := New("loud", "", FormatJSON)
	require.Error(t, err)

	_, _, err = New("info", "", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}
