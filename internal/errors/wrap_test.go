package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Wrap(nil, "context"))
	})

	t.Run("adds context and preserves chain", func(t *testing.T) {
		t.Parallel()
		err := Wrap(ErrTaskNotFound, "delete failed")
		require.Error(t, err)
		assert.Equal(t, "delete failed: task not found", err.Error())
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestWrapf(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Wrapf(nil, "task %d", 7))
	})

	t.Run("formats context and preserves chain", func(t *testing.T) {
		t.Parallel()
		err := Wrapf(ErrTaskNotFound, "failed to update task %d", 42)
		require.Error(t, err)
		assert.Equal(t, "failed to update task 42: task not found", err.Error())
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}
