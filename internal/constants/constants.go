// Package constants provides shared constant values for taskdeck.
//
// Centralizing these values keeps file names, directory layout, and log
// rotation settings consistent across packages without import cycles.
package constants

// AppName is the canonical application name used in logs and output.
const AppName = "taskdeck"

// TaskdeckHome is the per-user home directory name (under $HOME).
const TaskdeckHome = ".taskdeck"

// HomeEnvVar overrides the per-user home directory location when set.
const HomeEnvVar = "TASKDECK_HOME"

// ConfigFileName is the name of the YAML configuration file, looked up
// in the project-local .taskdeck directory and the user home directory.
const ConfigFileName = "config.yaml"

// DefaultTaskFileName is the default task file path, relative to the
// working directory unless overridden by config or the --file flag.
const DefaultTaskFileName = "tasks.txt"

// Log file settings.
const (
	// LogsDir is the directory name for log files under the taskdeck home.
	LogsDir = "logs"

	// CLILogFileName is the rotating CLI log file name.
	CLILogFileName = "taskdeck.log"

	// LogMaxSizeMB is the maximum size of a log file before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of rotated log files.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)

// File permissions.
const (
	// TaskFilePerm is the permission for the persisted task file.
	TaskFilePerm = 0o644

	// DirPerm is the permission for created directories.
	DirPerm = 0o750
)
