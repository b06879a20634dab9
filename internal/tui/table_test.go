package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/taskdeck/internal/task"
)

func sampleTasks(t *testing.T) []task.Task {
	t.Helper()

	return []task.Task{
		{ID: 1, Description: "write report", Priority: task.PriorityHighest, DueDate: task.Due(2026, 9, 1)},
		{ID: 2, Description: "water plants", Priority: task.PriorityLow, Completed: true, DueDate: task.Due(2026, 9, 15)},
	}
}

func TestTaskTable_Render(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tbl := NewTaskTable(sampleTasks(t), WithTerminalWidth(100))

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	output := buf.String()

	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "PRIORITY")
	assert.Contains(t, output, "DESCRIPTION")
	assert.Contains(t, output, "write report")
	assert.Contains(t, output, "Highest")
	assert.Contains(t, output, "2026-09-01")
	assert.Contains(t, output, "✓")
}

func TestTaskTable_RenderEmpty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tbl := NewTaskTable(nil, WithTerminalWidth(100))

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	// Header row only
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1)
}

func TestTaskTable_NarrowMode(t *testing.T) {
	tbl := NewTaskTable(sampleTasks(t), WithTerminalWidth(50))
	assert.True(t, tbl.IsNarrow())
	assert.Equal(t, []string{"ID", "PRI", "DUE", "DONE", "DESC"}, tbl.Headers())

	wide := NewTaskTable(sampleTasks(t), WithTerminalWidth(120))
	assert.False(t, wide.IsNarrow())
	assert.Equal(t, []string{"ID", "PRIORITY", "DUE", "DONE", "DESCRIPTION"}, wide.Headers())
}

func TestTaskTable_ToJSONData(t *testing.T) {
	tbl := NewTaskTable(sampleTasks(t), WithTerminalWidth(50))

	headers, rows := tbl.ToJSONData()
	// JSON output always uses full header names, even in narrow mode
	assert.Equal(t, []string{"ID", "PRIORITY", "DUE", "DONE", "DESCRIPTION"}, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "Highest", "2026-09-01", "·", "write report"}, rows[0])
	assert.Equal(t, []string{"2", "Low", "2026-09-15", "✓", "water plants"}, rows[1])
}

func TestTaskTable_LongDescriptionTruncated(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	long := strings.Repeat("x", 200)
	tasks := []task.Task{
		{ID: 1, Description: long, Priority: task.PriorityMedium, DueDate: task.Due(2026, 9, 1)},
	}
	tbl := NewTaskTable(tasks, WithTerminalWidth(80))

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 80)
	}
	assert.Contains(t, buf.String(), "…")
}

func TestTaskTable_TasksReturnsCopy(t *testing.T) {
	tasks := sampleTasks(t)
	tbl := NewTaskTable(tasks, WithTerminalWidth(100))

	got := tbl.Tasks()
	require.Len(t, got, 2)
	got[0].Description = "mutated"

	assert.Equal(t, "write report", tbl.Tasks()[0].Description)
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcd…", truncateString("abcdefgh", 5))
	assert.Equal(t, "…", truncateString("abc", 1))
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "  ab", padLeft("ab", 4))
	assert.Equal(t, "abcd", padRight("abcd", 2))
}
