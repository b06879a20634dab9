package config

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/errors"
)

// GlobalConfigDir returns the path to the global taskdeck configuration
// directory, typically ~/.taskdeck. The TASKDECK_HOME environment variable
// overrides the default location.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	if home := os.Getenv(constants.HomeEnvVar); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.TaskdeckHome), nil
}

// ProjectConfigDir returns the relative path to the project configuration
// directory, always .taskdeck relative to the working directory.
func ProjectConfigDir() string {
	return constants.TaskdeckHome
}

// GlobalConfigPath returns the full path to the global configuration file,
// typically ~/.taskdeck/config.yaml.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// ProjectConfigPath returns the relative path to the project configuration
// file, always .taskdeck/config.yaml.
func ProjectConfigPath() string {
	return filepath.Join(ProjectConfigDir(), constants.ConfigFileName)
}
