package config

import (
	"github.com/mrz1836/taskdeck/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - File must not be empty
//   - Output must be "text" or "json"
//   - Sort key must be one of "none", "priority", "due"
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if cfg.File == "" {
		return errors.Wrap(errors.ErrEmptyValue, "file must not be empty")
	}

	if cfg.Output != "text" && cfg.Output != "json" {
		return errors.Wrapf(errors.ErrInvalidOutputFormat,
			"output must be \"text\" or \"json\", got %q", cfg.Output)
	}

	if !isValidSortKey(cfg.Sort.Key) {
		return errors.Wrapf(errors.ErrInvalidSortKey,
			"sort.key must be one of %v, got %q", ValidSortKeys(), cfg.Sort.Key)
	}

	return nil
}

func isValidSortKey(key string) bool {
	for _, valid := range ValidSortKeys() {
		if key == valid {
			return true
		}
	}
	return false
}
