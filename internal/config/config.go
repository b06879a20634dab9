// Package config provides configuration management for taskdeck with layered
// precedence.
//
// Configuration sources are loaded in the following order (highest precedence
// first):
//  1. CLI flags (applied by the cli package after Load)
//  2. Environment variables (TASKDECK_* prefix)
//  3. Project config (.taskdeck/config.yaml)
//  4. Global config (~/.taskdeck/config.yaml)
//  5. Built-in defaults
//
// Each higher level overrides the lower level for the same key. Missing
// config files are expected and never an error.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/task or other internal packages.
package config

// Config is the root configuration structure for taskdeck.
type Config struct {
	// File is the task file path. Relative paths resolve against the
	// working directory.
	File string `yaml:"file" mapstructure:"file"`

	// Output is the default output format ("text" or "json").
	Output string `yaml:"output" mapstructure:"output"`

	// Autosave saves without prompting when quitting the interactive menu
	// with unsaved changes.
	Autosave bool `yaml:"autosave" mapstructure:"autosave"`

	// Sort configures the default ordering applied by the list command.
	Sort SortConfig `yaml:"sort" mapstructure:"sort"`
}

// SortConfig controls default list ordering.
type SortConfig struct {
	// Key selects the sort field: "none" (file order), "priority", or "due".
	Key string `yaml:"key" mapstructure:"key"`

	// Ascending orders Highest-priority-first / earliest-due-first.
	Ascending bool `yaml:"ascending" mapstructure:"ascending"`
}

// Sort key values accepted by SortConfig.Key.
const (
	SortNone     = "none"
	SortPriority = "priority"
	SortDue      = "due"
)

// ValidSortKeys returns the accepted sort key values.
func ValidSortKeys() []string {
	return []string{SortNone, SortPriority, SortDue}
}
