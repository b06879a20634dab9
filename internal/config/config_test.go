package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, "tasks.txt", cfg.File)
	assert.Equal(t, "text", cfg.Output)
	assert.False(t, cfg.Autosave)
	assert.Equal(t, SortNone, cfg.Sort.Key)
	assert.True(t, cfg.Sort.Ascending)
}

func TestDefaultConfig_IsValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(DefaultConfig()))
}

func TestValidSortKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"none", "priority", "due"}, ValidSortKeys())
}
