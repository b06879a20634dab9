package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
)

func TestDue(t *testing.T) {
	t.Parallel()

	d := Due(2026, time.September, 15)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.September, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, 12, d.Hour(), "due dates are pinned to local noon")
	assert.Equal(t, 0, d.Minute())
	assert.Equal(t, time.Local, d.Location())
}

func TestNormalizeDue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input time.Time
	}{
		{"midnight", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local)},
		{"end of day", time.Date(2026, time.March, 1, 23, 59, 59, 0, time.Local)},
		{"already noon", time.Date(2026, time.March, 1, 12, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizeDue(tt.input)
			assert.Equal(t, Due(2026, time.March, 1), got)
		})
	}
}

func TestFormatDue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2026-01-05", FormatDue(Due(2026, time.January, 5)))
	assert.Equal(t, "2026-11-30", FormatDue(Due(2026, time.November, 30)))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description string
		priority    Priority
		wantErr     error
	}{
		{"valid pair", "write report", PriorityMedium, nil},
		{"empty description", "", PriorityMedium, deckerrors.ErrEmptyDescription},
		{"zero priority", "write report", Priority(0), deckerrors.ErrInvalidPriority},
		{"priority too high", "write report", Priority(6), deckerrors.ErrInvalidPriority},
		{"both invalid reports description first", "", Priority(0), deckerrors.ErrEmptyDescription},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.description, tt.priority)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTask_Status(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Pending", Task{}.Status())
	assert.Equal(t, "Completed", Task{Completed: true}.Status())
}
