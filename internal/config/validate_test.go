package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		return &Config{
			File:   "tasks.txt",
			Output: "text",
			Sort:   SortConfig{Key: SortPriority, Ascending: true},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid config", func(*Config) {}, nil},
		{"json output valid", func(c *Config) { c.Output = "json" }, nil},
		{"due sort valid", func(c *Config) { c.Sort.Key = SortDue }, nil},
		{"empty file", func(c *Config) { c.File = "" }, deckerrors.ErrEmptyValue},
		{"bad output", func(c *Config) { c.Output = "yaml" }, deckerrors.ErrInvalidOutputFormat},
		{"bad sort key", func(c *Config) { c.Sort.Key = "id" }, deckerrors.ErrInvalidSortKey},
		{"empty sort key", func(c *Config) { c.Sort.Key = "" }, deckerrors.ErrInvalidSortKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, Validate(nil), deckerrors.ErrConfigNil)
	})
}
