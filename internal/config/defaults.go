package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/taskdeck/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by
// config files, environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		// File: tasks.txt in the working directory, matching the
		// classic single-file task list layout.
		File: constants.DefaultTaskFileName,

		// Output: human-readable text; scripts opt into JSON.
		Output: "text",

		// Autosave: off, so quitting the menu with unsaved changes
		// always asks first.
		Autosave: false,

		Sort: SortConfig{
			// Key: "none" preserves the canonical file order.
			Key: SortNone,

			// Ascending: most urgent first when a sort key is chosen.
			Ascending: true,
		},
	}
}

// setDefaults registers default values on a viper instance. These mirror
// DefaultConfig and form the lowest precedence configuration layer.
func setDefaults(v *viper.Viper) {
	v.SetDefault("file", constants.DefaultTaskFileName)
	v.SetDefault("output", "text")
	v.SetDefault("autosave", false)
	v.SetDefault("sort.key", SortNone)
	v.SetDefault("sort.ascending", true)
}
