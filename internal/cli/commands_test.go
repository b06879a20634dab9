package cli

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/taskdeck/internal/task"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// jsonTask mirrors the task JSON shape for decoding command output.
type jsonTask struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Completed   bool   `json:"completed"`
}

// jsonListing mirrors the list command's JSON output.
type jsonListing struct {
	Tasks             []jsonTask `json:"tasks"`
	Total             int        `json:"total"`
	CompletionPercent float64    `json:"completion_percent"`
}

func decodeTask(t *testing.T, output string) jsonTask {
	t.Helper()
	var decoded jsonTask
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	return decoded
}

func listJSON(t *testing.T) jsonListing {
	t.Helper()
	output, err := execRoot(t, "list", "-o", "json")
	require.NoError(t, err)
	var decoded jsonListing
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	return decoded
}

func TestAddCmd(t *testing.T) {
	isolateHome(t)

	output, err := execRoot(t, "add", "Write report", "--priority", "1", "--due", "2026-09-15", "-o", "json")
	require.NoError(t, err)

	created := decodeTask(t, output)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Write report", created.Description)
	assert.Equal(t, 1, created.Priority)
	assert.False(t, created.Completed)

	// Persisted to the default task file in the working directory
	data, err := os.ReadFile("tasks.txt")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Write report|1 0 ")
}

func TestAddCmd_DefaultsToMediumDueToday(t *testing.T) {
	isolateHome(t)

	output, err := execRoot(t, "add", "Water plants", "-o", "json")
	require.NoError(t, err)

	created := decodeTask(t, output)
	assert.Equal(t, int(task.PriorityMedium), created.Priority)
}

func TestAddCmd_RejectsInvalidInput(t *testing.T) {
	isolateHome(t)

	_, err := execRoot(t, "add", "Task", "--priority", "9")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))

	_, err = execRoot(t, "add", "Task", "--due", "not-a-date")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))

	_, err = execRoot(t, "add", "")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))

	// Delimiter and line breaks would corrupt the task file on save.
	_, err = execRoot(t, "add", "bad|description")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))

	_, err = execRoot(t, "add", "first line\nsecond line")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestListCmd_Empty(t *testing.T) {
	isolateHome(t)

	listing := listJSON(t)
	assert.Equal(t, 0, listing.Total)
	assert.InDelta(t, 0.0, listing.CompletionPercent, 0.001)
}

func TestListCmd_FiltersAndSort(t *testing.T) {
	isolateHome(t)

	_, err := execRoot(t, "add", "low task", "--priority", "4")
	require.NoError(t, err)
	_, err = execRoot(t, "add", "urgent task", "--priority", "1")
	require.NoError(t, err)
	_, err = execRoot(t, "done", "1")
	require.NoError(t, err)

	// Completed filter
	output, err := execRoot(t, "list", "--completed", "-o", "json")
	require.NoError(t, err)
	var completed jsonListing
	require.NoError(t, json.Unmarshal([]byte(output), &completed))
	require.Len(t, completed.Tasks, 1)
	assert.Equal(t, "low task", completed.Tasks[0].Description)

	// Pending filter
	output, err = execRoot(t, "list", "--pending", "-o", "json")
	require.NoError(t, err)
	var pending jsonListing
	require.NoError(t, json.Unmarshal([]byte(output), &pending))
	require.Len(t, pending.Tasks, 1)
	assert.Equal(t, "urgent task", pending.Tasks[0].Description)

	// Sorted by priority, Highest first; in-memory only
	output, err = execRoot(t, "list", "--sort", "priority", "-o", "json")
	require.NoError(t, err)
	var sorted jsonListing
	require.NoError(t, json.Unmarshal([]byte(output), &sorted))
	require.Len(t, sorted.Tasks, 2)
	assert.Equal(t, "urgent task", sorted.Tasks[0].Description)

	// The file keeps insertion order
	data, err := os.ReadFile("tasks.txt")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "low task|"))
}

func TestListCmd_InvalidSortKey(t *testing.T) {
	isolateHome(t)

	_, err := execRoot(t, "list", "--sort", "color")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestDoneCmd(t *testing.T) {
	isolateHome(t)

	_, err := execRoot(t, "add", "finish taxes")
	require.NoError(t, err)

	output, err := execRoot(t, "done", "1", "-o", "json")
	require.NoError(t, err)
	assert.True(t, decodeTask(t, output).Completed)

	// Marking done twice is a no-op that still succeeds
	output, err = execRoot(t, "done", "1", "-o", "json")
	require.NoError(t, err)
	assert.True(t, decodeTask(t, output).Completed)

	// Undo flips it back
	output, err = execRoot(t, "done", "1", "--undo", "-o", "json")
	require.NoError(t, err)
	assert.False(t, decodeTask(t, output).Completed)
}

func TestDoneCmd_UnknownID(t *testing.T) {
	isolateHome(t)

	_, err := execRoot(t, "done", "42")
	require.Error(t, err)
	assert.Equal(t, ExitError, ExitCodeForError(err))
}

func TestEditCmd(t *testing.T) {
	isolateHome(t)

	_, err := execRoot(t, "add", "draft email", "--priority", "3", "--due", "2026-09-01")
	require.NoError(t, err)

	output, err := execRoot(t, "edit", "1", "--description", "send email", "--priority", "2", "-o", "json")
	require.NoError(t, err)

	updated := decodeTask(t, output)
	assert.Equal(t, "send email", updated.Description)
	assert.Equal(t, 2, updated.Priority)

	output, err = execRoot(t, "edit", "1", "--done", "-o", "json")
	require.NoError(t, err)
	assert.True(t, decodeTask(t, output).Completed)

	output, err = execRoot(t, "edit", "1", "--undone", "-o", "json")
	require.NoError(t, err)
	assert.False(t, decodeTask(t, output).Completed)
}

func TestEditCmd_AtomicRejection(t *testing.T) {
	isolateHome(t)

	_, err := execRoot(t, "add", "draft email", "--priority", "3")
	require.NoError(t, err)

	// Invalid priority rejects the whole patch, description included
	_, err = execRoot(t, "edit", "1", "--description", "changed", "--priority", "9")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))

	listing := listJSON(t)
	require.Len(t, listing.Tasks, 1)
	assert.Equal(t, "draft email", listing.Tasks[0].Description)
	assert.Equal(t, 3, listing.Tasks[0].Priority)
}

func TestEditCmd_NoFlagsNeedsTerminal(t *testing.T) {
	isolateHome(t)

	_, err := execRoot(t, "add", "a task")
	require.NoError(t, err)

	// With no flags, edit switches to an interactive form, which is
	// unavailable without a terminal.
	_, err = execRoot(t, "edit", "1")
	require.Error(t, err)
	require.ErrorIs(t, err, tui.ErrMenuCanceled)
}

func TestDeleteCmd(t *testing.T) {
	isolateHome(t)

	_, err := execRoot(t, "add", "first")
	require.NoError(t, err)
	_, err = execRoot(t, "add", "second")
	require.NoError(t, err)

	_, err = execRoot(t, "delete", "1", "--yes")
	require.NoError(t, err)

	listing := listJSON(t)
	require.Len(t, listing.Tasks, 1)
	assert.Equal(t, "second", listing.Tasks[0].Description)
}

func TestDeleteCmd_UnknownIDIsWarning(t *testing.T) {
	isolateHome(t)

	_, err := execRoot(t, "add", "only task")
	require.NoError(t, err)

	// Deleting a nonexistent id is a warning, not an error
	output, err := execRoot(t, "delete", "99", "--yes")
	require.NoError(t, err)
	assert.Contains(t, output, "does not exist")

	listing := listJSON(t)
	assert.Len(t, listing.Tasks, 1)
}

func TestSortCmd_Persists(t *testing.T) {
	isolateHome(t)

	_, err := execRoot(t, "add", "later", "--due", "2026-12-01")
	require.NoError(t, err)
	_, err = execRoot(t, "add", "sooner", "--due", "2026-09-01")
	require.NoError(t, err)

	_, err = execRoot(t, "sort", "due")
	require.NoError(t, err)

	data, err := os.ReadFile("tasks.txt")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "sooner|"))

	// Ids are re-derived from the new line order on the next load
	listing := listJSON(t)
	require.Len(t, listing.Tasks, 2)
	assert.Equal(t, "sooner", listing.Tasks[0].Description)
	assert.Equal(t, 1, listing.Tasks[0].ID)
}

func TestSortCmd_InvalidKey(t *testing.T) {
	isolateHome(t)

	_, err := execRoot(t, "sort", "color")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestStatsCmd(t *testing.T) {
	isolateHome(t)

	_, err := execRoot(t, "add", "a", "--priority", "1")
	require.NoError(t, err)
	_, err = execRoot(t, "add", "b", "--priority", "1")
	require.NoError(t, err)
	_, err = execRoot(t, "add", "c", "--priority", "5")
	require.NoError(t, err)
	_, err = execRoot(t, "add", "d")
	require.NoError(t, err)
	_, err = execRoot(t, "done", "2")
	require.NoError(t, err)

	output, err := execRoot(t, "stats", "-o", "json")
	require.NoError(t, err)

	var stats struct {
		Total             int            `json:"total"`
		Completed         int            `json:"completed"`
		Pending           int            `json:"pending"`
		CompletionPercent float64        `json:"completion_percent"`
		ByPriority        map[string]int `json:"by_priority"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &stats))

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 3, stats.Pending)
	assert.InDelta(t, 25.0, stats.CompletionPercent, 0.001)
	assert.Equal(t, 2, stats.ByPriority["Highest"])
	assert.Equal(t, 1, stats.ByPriority["Lowest"])
	assert.Equal(t, 1, stats.ByPriority["Medium"])
}

func TestMenuCmd_RequiresTerminal(t *testing.T) {
	isolateHome(t)

	// Under go test stdin is not a terminal
	_, err := execRoot(t, "menu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestFileFlagOverridesConfig(t *testing.T) {
	isolateHome(t)

	_, err := execRoot(t, "add", "elsewhere", "--file", "other.txt")
	require.NoError(t, err)

	_, statErr := os.Stat("tasks.txt")
	assert.True(t, os.IsNotExist(statErr))

	data, err := os.ReadFile("other.txt")
	require.NoError(t, err)
	assert.Contains(t, string(data), "elsewhere|")

	output, err := execRoot(t, "list", "--file", "other.txt", "-o", "json")
	require.NoError(t, err)
	var listing jsonListing
	require.NoError(t, json.Unmarshal([]byte(output), &listing))
	assert.Equal(t, 1, listing.Total)
}

func TestMalformedLinesAreWarnings(t *testing.T) {
	isolateHome(t)

	content := "good task|3 0 1788958800\nthis line has no delimiter\nanother good|1 1 1788958800\n"
	require.NoError(t, os.WriteFile("tasks.txt", []byte(content), 0o644))

	output, err := execRoot(t, "list")
	require.NoError(t, err)
	assert.Contains(t, output, "line 2")
	assert.Contains(t, output, "good task")
	assert.Contains(t, output, "another good")
}

func TestConfigShowCmd(t *testing.T) {
	isolateHome(t)

	output, err := execRoot(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "file: tasks.txt")
	assert.Contains(t, output, "output: text")
	assert.Contains(t, output, "sort:")

	output, err = execRoot(t, "config", "show", "--format", "json")
	require.NoError(t, err)
	var cfg map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &cfg))
}
