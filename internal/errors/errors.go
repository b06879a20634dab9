// Package errors provides centralized error handling for taskdeck.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrEmptyDescription indicates a task description was empty.
	// Empty descriptions are rejected at creation and on update.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrInvalidPriority indicates a priority outside the five valid ranks.
	ErrInvalidPriority = errors.New("priority out of range")

	// ErrTaskNotFound indicates that no task exists with the requested id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrFileAccess indicates the task file could not be opened for
	// reading or writing. A missing file on load is NOT this error;
	// load treats absence as an empty collection.
	ErrFileAccess = errors.New("cannot access task file")

	// ErrMalformedLine indicates a task file line that could not be parsed.
	// Malformed lines are skipped with a diagnostic, never fatal.
	ErrMalformedLine = errors.New("malformed task line")

	// ErrInvalidDate indicates a due date that is not a valid calendar date
	// or not in the expected YYYY-MM-DD format.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidSortKey indicates an unknown sort key was specified.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrNoMenuOptions indicates that no options were provided to a menu.
	ErrNoMenuOptions = errors.New("no menu options provided")

	// ErrMenuCanceled indicates that the user canceled a menu operation.
	ErrMenuCanceled = errors.New("menu canceled by user")

	// ErrNonInteractiveMode indicates that an operation requiring a terminal
	// was attempted without one.
	ErrNonInteractiveMode = errors.New("interactive terminal required")

	// ErrUserInputRequired indicates user input is required but not provided.
	// Commands should exit with code 2 when this error is returned.
	ErrUserInputRequired = errors.New("user input required")

	// ErrJSONErrorOutput indicates that an error has already been output as JSON.
	// This ensures a non-zero exit code while preventing duplicate error messages.
	// Commands should silence cobra's error printing when this is returned.
	ErrJSONErrorOutput = errors.New("error output as JSON")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
