package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/mrz1836/taskdeck/internal/task"
)

// TerminalWidthNarrow is the threshold below which the table switches to
// abbreviated headers.
const TerminalWidthNarrow = 60

// TaskColumnWidths holds the widths for each task table column.
type TaskColumnWidths struct {
	ID          int
	Priority    int
	Due         int
	Done        int
	Description int
}

// MinTaskColumnWidths defines the minimum width for each task table column.
// Used to ensure readability even with short content.
//
//nolint:gochecknoglobals // Intentional package-level constant for table minimum widths
var MinTaskColumnWidths = TaskColumnWidths{
	ID:          2,
	Priority:    7,
	Due:         10,
	Done:        4,
	Description: 11,
}

// TaskTableConfig holds configuration for the task table.
type TaskTableConfig struct {
	// TerminalWidth is the detected terminal width (or forced width for testing).
	TerminalWidth int
	// Narrow indicates whether to use abbreviated headers.
	Narrow bool
}

// TaskTableOption is a functional option for TaskTable configuration.
type TaskTableOption func(*TaskTable)

// WithTerminalWidth sets a specific terminal width (useful for testing).
func WithTerminalWidth(width int) TaskTableOption {
	return func(t *TaskTable) {
		t.config.TerminalWidth = width
		t.config.Narrow = width > 0 && width < TerminalWidthNarrow
	}
}

// TaskTable renders tasks in a formatted table.
// Supports both TTY and JSON output via the ToJSONData method.
type TaskTable struct {
	tasks  []task.Task
	styles *TableStyles
	config TaskTableConfig
}

// NewTaskTable creates a new task table with the given tasks.
// Automatically detects terminal width and narrow mode.
func NewTaskTable(tasks []task.Task, opts ...TaskTableOption) *TaskTable {
	t := &TaskTable{
		tasks:  tasks,
		styles: NewTableStyles(),
		config: TaskTableConfig{
			TerminalWidth: detectTerminalWidth(),
		},
	}

	t.config.Narrow = t.config.TerminalWidth > 0 && t.config.TerminalWidth < TerminalWidthNarrow

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// detectTerminalWidth returns the current terminal width.
// Returns 80 if detection fails (assume standard terminal).
func detectTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}
	return width
}

// IsNarrow returns true if the terminal is in narrow mode.
func (t *TaskTable) IsNarrow() bool {
	return t.config.Narrow
}

// Headers returns the column headers, abbreviated if in narrow mode.
func (t *TaskTable) Headers() []string {
	if t.config.Narrow {
		return []string{"ID", "PRI", "DUE", "DONE", "DESC"}
	}
	return []string{"ID", "PRIORITY", "DUE", "DONE", "DESCRIPTION"}
}

// FullHeaders returns the full (non-abbreviated) column headers.
// Used for JSON output which should always use full names.
func (t *TaskTable) FullHeaders() []string {
	return []string{"ID", "PRIORITY", "DUE", "DONE", "DESCRIPTION"}
}

// Render writes the formatted table to the writer.
// Uses bold header styling and proper column alignment.
func (t *TaskTable) Render(w io.Writer) error {
	headers := t.Headers()
	widths := t.calculateColumnWidths()
	widthsSlice := []int{widths.ID, widths.Priority, widths.Due, widths.Done, widths.Description}

	headerParts := make([]string, len(headers))
	for i, h := range headers {
		headerParts[i] = t.styles.Header.Render(padRight(h, widthsSlice[i]))
	}
	if _, err := fmt.Fprintln(w, strings.Join(headerParts, "  ")); err != nil {
		return err
	}

	for _, tk := range t.tasks {
		rowCells := []string{
			padLeft(fmt.Sprintf("%d", tk.ID), widths.ID),
			t.renderPriorityCellPadded(tk.Priority, widths.Priority),
			padRight(formatDueCell(tk.DueDate), widths.Due),
			padRight(doneCell(tk.Completed), widths.Done),
			truncateString(tk.Description, widths.Description),
		}
		if _, err := fmt.Fprintln(w, strings.Join(rowCells, "  ")); err != nil {
			return err
		}
	}

	return nil
}

// ToJSONData converts the table to JSON-compatible rows.
// Always uses full header names and plain (unstyled) cell values.
func (t *TaskTable) ToJSONData() ([]string, [][]string) {
	headers := t.FullHeaders()

	rows := make([][]string, len(t.tasks))
	for i, tk := range t.tasks {
		rows[i] = []string{
			fmt.Sprintf("%d", tk.ID),
			tk.Priority.String(),
			formatDueCell(tk.DueDate),
			doneCell(tk.Completed),
			tk.Description,
		}
	}
	return headers, rows
}

// Tasks returns a copy of the table's tasks.
func (t *TaskTable) Tasks() []task.Task {
	if t.tasks == nil {
		return nil
	}
	result := make([]task.Task, len(t.tasks))
	copy(result, t.tasks)
	return result
}

// calculateColumnWidths calculates widths for each column based on content.
// Uses runewidth for proper display-width handling of wide characters.
func (t *TaskTable) calculateColumnWidths() TaskColumnWidths {
	headers := t.Headers()
	widths := TaskColumnWidths{
		ID:          max(MinTaskColumnWidths.ID, runewidth.StringWidth(headers[0])),
		Priority:    max(MinTaskColumnWidths.Priority, runewidth.StringWidth(headers[1])),
		Due:         max(MinTaskColumnWidths.Due, runewidth.StringWidth(headers[2])),
		Done:        max(MinTaskColumnWidths.Done, runewidth.StringWidth(headers[3])),
		Description: max(MinTaskColumnWidths.Description, runewidth.StringWidth(headers[4])),
	}

	for _, tk := range t.tasks {
		if w := runewidth.StringWidth(fmt.Sprintf("%d", tk.ID)); w > widths.ID {
			widths.ID = w
		}
		if w := runewidth.StringWidth(tk.Priority.String()); w > widths.Priority {
			widths.Priority = w
		}
		if w := runewidth.StringWidth(formatDueCell(tk.DueDate)); w > widths.Due {
			widths.Due = w
		}
		if w := runewidth.StringWidth(tk.Description); w > widths.Description {
			widths.Description = w
		}
	}

	return t.constrainToTerminalWidth(widths)
}

// constrainToTerminalWidth reduces the description column to fit within the
// terminal width. The other columns are fixed-width and stay untouched.
func (t *TaskTable) constrainToTerminalWidth(widths TaskColumnWidths) TaskColumnWidths {
	// 5 columns with 2-space separators = 4 separators * 2 chars
	const separatorWidth = 8
	totalWidth := widths.ID + widths.Priority + widths.Due + widths.Done + widths.Description + separatorWidth

	if t.config.TerminalWidth <= 0 || totalWidth <= t.config.TerminalWidth {
		return widths
	}

	overflow := totalWidth - t.config.TerminalWidth
	if widths.Description-overflow >= MinTaskColumnWidths.Description {
		widths.Description -= overflow
	} else {
		widths.Description = MinTaskColumnWidths.Description
	}

	return widths
}

// renderPriorityCellPadded renders the priority cell with semantic color and
// proper padding. Padding is calculated on the plain text so ANSI escape
// sequences do not break alignment.
func (t *TaskTable) renderPriorityCellPadded(p task.Priority, width int) string {
	plain := p.String()
	plainWidth := runewidth.StringWidth(plain)

	styled := plain
	if color, ok := PriorityColors()[p]; ok {
		styled = lipgloss.NewStyle().Foreground(color).Render(plain)
	}

	if plainWidth >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-plainWidth)
}

// formatDueCell formats a due date for table display.
func formatDueCell(due time.Time) string {
	return task.FormatDue(due)
}

// doneCell renders the completion marker for a row.
func doneCell(completed bool) string {
	if completed {
		return "✓"
	}
	return "·"
}

// padRight pads a string with spaces on the right to the given display width.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// padLeft pads a string with spaces on the left to the given display width.
func padLeft(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// truncateString shortens a string to the given display width, appending an
// ellipsis when content was cut.
func truncateString(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, width, "…")
}
