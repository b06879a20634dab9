package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrEmptyDescription,
		ErrInvalidPriority,
		ErrTaskNotFound,
		ErrFileAccess,
		ErrMalformedLine,
		ErrInvalidDate,
		ErrInvalidArgument,
		ErrInvalidOutputFormat,
		ErrInvalidSortKey,
		ErrMenuCanceled,
		ErrNonInteractiveMode,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b, "sentinels %d and %d must be distinct", i, j)
		}
	}
}

func TestSentinelErrors_WrappedIsCheckable(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("add failed: %w", ErrEmptyDescription)
	assert.ErrorIs(t, wrapped, ErrEmptyDescription)
	assert.NotErrorIs(t, wrapped, ErrInvalidPriority)
}

func TestExitCode2Error(t *testing.T) {
	t.Parallel()

	t.Run("wraps and unwraps", func(t *testing.T) {
		t.Parallel()
		err := NewExitCode2Error(ErrUserInputRequired)
		require.Error(t, err)
		assert.Equal(t, ErrUserInputRequired.Error(), err.Error())
		assert.ErrorIs(t, err, ErrUserInputRequired)
	})

	t.Run("detected through wrapping", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", NewExitCode2Error(ErrInvalidArgument))
		assert.True(t, IsExitCode2Error(err))
	})

	t.Run("not detected for plain errors", func(t *testing.T) {
		t.Parallel()
		assert.False(t, IsExitCode2Error(stderrors.New("plain")))
		assert.False(t, IsExitCode2Error(nil))
	})
}
