package task

import (
	"fmt"
	"time"

	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
)

// DueDateFormat is the day-granularity rendering of due dates.
const DueDateFormat = "2006-01-02"

// Task is one trackable unit of work. ID is unique within the live
// collection, assigned by the store at construction, and never mutated.
type Task struct {
	// ID is the process-local unique identifier.
	ID int `json:"id"`

	// Description is the non-empty task text.
	Description string `json:"description"`

	// Priority is the urgency rank, Highest(1) through Lowest(5).
	Priority Priority `json:"priority"`

	// Completed reports whether the task is done. Defaults to false.
	Completed bool `json:"completed"`

	// DueDate is the calendar due date, normalized to local noon so that
	// rendering it as a date string never crosses a DST boundary.
	DueDate time.Time `json:"due_date"`
}

// Due builds a due date for the given calendar day at local noon.
func Due(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
}

// NormalizeDue snaps an arbitrary time to local noon of its calendar day.
func NormalizeDue(t time.Time) time.Time {
	local := t.In(time.Local)
	return Due(local.Year(), local.Month(), local.Day())
}

// FormatDue renders a due date at day granularity (YYYY-MM-DD).
func FormatDue(t time.Time) string {
	return t.In(time.Local).Format(DueDateFormat)
}

// Validate checks the description/priority pair that every task record must
// satisfy. Both Add and Update validate through this single path, and the
// codec re-validates at the save boundary.
func Validate(description string, priority Priority) error {
	if description == "" {
		return deckerrors.ErrEmptyDescription
	}
	if !priority.IsValid() {
		return fmt.Errorf("%w: must be between %d and %d",
			deckerrors.ErrInvalidPriority, PriorityHighest.Rank(), PriorityLowest.Rank())
	}
	return nil
}

// Status returns the display label for the completion flag.
func (t Task) Status() string {
	if t.Completed {
		return "Completed"
	}
	return "Pending"
}
