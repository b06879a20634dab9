package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zerolog.DebugLevel, selectLevel(true, false))
	assert.Equal(t, zerolog.WarnLevel, selectLevel(false, true))
	assert.Equal(t, zerolog.InfoLevel, selectLevel(false, false))
}

func TestInitLoggerWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLoggerWithWriter(false, false, &buf)

	logger.Info().Str("key", "value").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "value", entry["key"])

	// Debug is filtered at info level
	buf.Reset()
	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestInitLogger_CreatesLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TASKDECK_HOME", home)

	logger := InitLogger(false, false)
	logger.Info().Msg("first entry")
	CloseLogFile()

	path, err := LogFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "taskdeck.log"), path)

	data, err := os.ReadFile(path) //nolint:gosec // Test-controlled path
	require.NoError(t, err)
	assert.Contains(t, string(data), "first entry")
	assert.Contains(t, string(data), "run_id")
}
