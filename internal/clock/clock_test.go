package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	t.Parallel()

	before := time.Now()
	got := RealClock{}.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFixed_Now(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.Local)
	c := Fixed(ts)

	assert.Equal(t, ts, c.Now())
	assert.Equal(t, ts, c.Now(), "fixed clock must not advance")
}
