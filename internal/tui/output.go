package tui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Output is the sink for user-facing command results. Commands write their
// outcome through it so one code path serves both a styled terminal and a
// machine-readable JSON stream.
type Output interface {
	// Success reports a completed mutation.
	Success(msg string)
	// Error reports a failure.
	Error(err error)
	// Warning reports a recoverable condition, such as a skipped file line.
	Warning(msg string)
	// Info prints a neutral line, such as a table footer.
	Info(msg string)
	// JSON emits v as indented JSON.
	JSON(v any) error
}

// TTYOutput renders results for a human terminal: one status glyph and
// message per line, colored by severity.
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
}

// NewTTYOutput creates a TTYOutput on w. Color support is probed once via
// CheckNoColor, so NO_COLOR and dumb terminals get plain text.
func NewTTYOutput(w io.Writer) *TTYOutput {
	CheckNoColor()

	return &TTYOutput{
		w:      w,
		styles: NewOutputStyles(),
	}
}

// statusLine writes one glyph-prefixed message in the given style.
func (o *TTYOutput) statusLine(style lipgloss.Style, glyph, msg string) {
	_, _ = fmt.Fprintln(o.w, style.Render(glyph+" "+msg))
}

// Success reports a completed mutation with a ✓ glyph.
func (o *TTYOutput) Success(msg string) {
	o.statusLine(o.styles.Success, "✓", msg)
}

// Error reports a failure with a ✗ glyph.
func (o *TTYOutput) Error(err error) {
	o.statusLine(o.styles.Error, "✗", err.Error())
}

// Warning reports a recoverable condition with a ⚠ glyph.
func (o *TTYOutput) Warning(msg string) {
	o.statusLine(o.styles.Warning, "⚠", msg)
}

// Info prints a neutral line without a glyph.
func (o *TTYOutput) Info(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Info.Render(msg))
}

// JSON emits v as indented JSON. Available even in text mode so callers can
// dump structures without switching Output implementations.
func (o *TTYOutput) JSON(v any) error {
	return writeJSON(o.w, v)
}

// JSONOutput keeps the stream machine-parseable. Human status lines are
// suppressed; errors become a one-line {"error": ...} object so scripts can
// detect failure without scraping stderr.
type JSONOutput struct {
	w io.Writer
}

// NewJSONOutput creates a JSONOutput on w.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{w: w}
}

// Success is suppressed in JSON mode.
func (o *JSONOutput) Success(_ string) {}

// Warning is suppressed in JSON mode.
func (o *JSONOutput) Warning(_ string) {}

// Info is suppressed in JSON mode.
func (o *JSONOutput) Info(_ string) {}

// Error emits the error as a one-line JSON object.
func (o *JSONOutput) Error(err error) {
	line, _ := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: err.Error()})
	_, _ = fmt.Fprintln(o.w, string(line))
}

// JSON emits v as indented JSON.
func (o *JSONOutput) JSON(v any) error {
	return writeJSON(o.w, v)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// NewOutput selects the implementation for the requested output format.
func NewOutput(w io.Writer, format string) Output {
	if format == "json" {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
