package tui

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
)

// TestOutputInterface_TTYOutput tests TTYOutput implements the Output interface.
func TestOutputInterface_TTYOutput(t *testing.T) {
	var buf bytes.Buffer
	var out Output = NewTTYOutput(&buf)
	assert.NotNil(t, out)
}

// TestOutputInterface_JSONOutput tests JSONOutput implements the Output interface.
func TestOutputInterface_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	var out Output = NewJSONOutput(&buf)
	assert.NotNil(t, out)
}

func TestTTYOutput_Success(t *testing.T) {
	var buf bytes.Buffer
	out := NewTTYOutput(&buf)
	out.Success("task added")
	output := buf.String()
	assert.Contains(t, output, "✓")
	assert.Contains(t, output, "task added")
}

func TestTTYOutput_Error(t *testing.T) {
	var buf bytes.Buffer
	out := NewTTYOutput(&buf)
	out.Error(deckerrors.ErrTaskNotFound)
	output := buf.String()
	assert.Contains(t, output, "✗")
	assert.Contains(t, output, "not found")
}

func TestTTYOutput_Warning(t *testing.T) {
	var buf bytes.Buffer
	out := NewTTYOutput(&buf)
	out.Warning("skipped malformed line")
	output := buf.String()
	assert.Contains(t, output, "⚠")
	assert.Contains(t, output, "skipped malformed line")
}

func TestTTYOutput_Info(t *testing.T) {
	var buf bytes.Buffer
	out := NewTTYOutput(&buf)
	out.Info("3 tasks pending")
	assert.Contains(t, buf.String(), "3 tasks pending")
}

func TestTTYOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	out := NewTTYOutput(&buf)
	require.NoError(t, out.JSON(map[string]int{"count": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["count"])
}

func TestJSONOutput_SuppressesHumanMessages(t *testing.T) {
	var buf bytes.Buffer
	out := NewJSONOutput(&buf)
	out.Success("ignored")
	out.Warning("ignored")
	out.Info("ignored")
	assert.Empty(t, buf.String())
}

func TestJSONOutput_Error(t *testing.T) {
	var buf bytes.Buffer
	out := NewJSONOutput(&buf)
	out.Error(deckerrors.ErrEmptyDescription)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded["error"], "description")
}

func TestJSONOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	out := NewJSONOutput(&buf)
	require.NoError(t, out.JSON([]string{"a", "b"}))

	var decoded []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"a", "b"}, decoded)
}

func TestNewOutput(t *testing.T) {
	var buf bytes.Buffer

	out := NewOutput(&buf, "json")
	_, isJSON := out.(*JSONOutput)
	assert.True(t, isJSON)

	out = NewOutput(&buf, "text")
	_, isTTY := out.(*TTYOutput)
	assert.True(t, isTTY)

	// Unknown formats fall back to TTY output
	out = NewOutput(&buf, "")
	_, isTTY = out.(*TTYOutput)
	assert.True(t, isTTY)
}
