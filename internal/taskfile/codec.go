// Package taskfile is the persistence codec between the in-memory task
// collection and its line-oriented text file.
//
// Each record is one line:
//
//	<description>|<priority> <completed> <due>
//
// where priority is the numeric rank 1-5, completed is 0 or 1, and due is
// the due date as epoch seconds. The '|' delimiter keeps descriptions with
// spaces intact without escaping.
//
// KNOWN LIMITATION: a description containing '|' desynchronizes parsing on
// reload; the text after the first '|' is read as the numeric trailer and
// the line is skipped as malformed. A line break in a description splits the
// record across file lines with the same effect. This is a documented
// boundary condition of the format, not silently repaired; the CLI rejects
// both characters at input time.
package taskfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/taskdeck/internal/constants"
	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/task"
)

// Delimiter separates the description from the numeric trailer.
const Delimiter = "|"

// trailerFields is the number of whitespace-separated values after the delimiter.
const trailerFields = 3

// record is one parsed file line before it is replayed into a store.
type record struct {
	description string
	priority    task.Priority
	completed   bool
	due         time.Time
}

// Load reads the task file at path into a fresh store, replacing nothing:
// the caller swaps in the returned store wholesale.
//
// A missing file is not an error; the result is an empty store with no
// warnings. An existing file that cannot be opened is a real failure and is
// surfaced wrapped in ErrFileAccess.
//
// Each line is parsed independently and there is no line-length limit: an
// oversized line is parsed (or skipped) like any other without aborting the
// load. Lines with an empty description, a priority outside 1-5, or a
// malformed trailer are skipped; one warning per skipped line is returned
// and logged, and processing continues. Ids are
// never read from the file: every kept line is replayed through the store's
// own Add path in file order, so loaded tasks get fresh sequential ids
// 1..N and the next-id counter lands one past the last assigned.
func Load(ctx context.Context, path string) (*task.Store, []string, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "taskfile").Logger()

	store := task.NewStore()

	f, err := os.Open(path) //nolint:gosec // path comes from config or an explicit flag
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: %s: %w", deckerrors.ErrFileAccess, path, err)
	}
	defer func() { _ = f.Close() }()

	// bufio.Reader instead of bufio.Scanner: Scanner turns one line past
	// its token limit into a fatal error for the whole file, while ReadString
	// grows its buffer and keeps a bad line local.
	var warnings []string
	reader := bufio.NewReader(f)
	lineNo := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if raw != "" {
			lineNo++
			if line := strings.TrimRight(raw, "\r\n"); line != "" {
				if warning := replayLine(store, line, lineNo); warning != "" {
					warnings = append(warnings, warning)
					logger.Warn().Int("line", lineNo).Str("reason", warning).Msg("skipping invalid task line")
				}
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return nil, warnings, fmt.Errorf("%w: %s: %w", deckerrors.ErrFileAccess, path, readErr)
		}
	}

	logger.Debug().Int("tasks", store.Len()).Int("skipped", len(warnings)).Msg("task file loaded")
	return store, warnings, nil
}

// Save writes the full collection to path, truncating any existing file.
// The write is not atomic; a failure mid-write can leave a partial file.
//
// Every record is re-validated at this boundary. A record that fails
// validation is skipped with a warning; given the store's own invariants
// this should be unreachable, but the codec does not trust its caller.
func Save(ctx context.Context, path string, store *task.Store) error {
	logger := zerolog.Ctx(ctx).With().Str("component", "taskfile").Logger()

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.TaskFilePerm) //nolint:gosec // path comes from config or an explicit flag
	if err != nil {
		return fmt.Errorf("%w: %s: %w", deckerrors.ErrFileAccess, path, err)
	}

	w := bufio.NewWriter(f)
	written := 0
	for _, t := range store.List() {
		if vErr := task.Validate(t.Description, t.Priority); vErr != nil {
			logger.Warn().Int("id", t.ID).Err(vErr).Msg("invalid task not saved")
			continue
		}
		if _, wErr := fmt.Fprintf(w, "%s%s%d %d %d\n",
			t.Description, Delimiter, t.Priority.Rank(), boolToInt(t.Completed), t.DueDate.Unix()); wErr != nil {
			_ = f.Close()
			return fmt.Errorf("%w: %s: %w", deckerrors.ErrFileAccess, path, wErr)
		}
		written++
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s: %w", deckerrors.ErrFileAccess, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", deckerrors.ErrFileAccess, path, err)
	}

	logger.Debug().Int("tasks", written).Str("path", path).Msg("task file saved")
	return nil
}

// replayLine parses one file line and replays it through the store's Add
// path. It returns a non-empty diagnostic when the line must be skipped.
func replayLine(store *task.Store, line string, lineNo int) string {
	rec, err := parseLine(line)
	if err != nil {
		return fmt.Sprintf("line %d: %v", lineNo, err)
	}

	added, err := store.Add(rec.description, rec.priority, rec.due)
	if err != nil {
		// parseLine already validated; unreachable unless validation rules diverge.
		return fmt.Sprintf("line %d: %v", lineNo, err)
	}
	if rec.completed {
		completed := true
		if _, err := store.Update(added.ID, task.Patch{Completed: &completed}); err != nil {
			return fmt.Sprintf("line %d: %v", lineNo, err)
		}
	}
	return ""
}

// parseLine parses one file line into a record.
func parseLine(line string) (record, error) {
	idx := strings.Index(line, Delimiter)
	if idx < 0 {
		return record{}, fmt.Errorf("%w: missing %q delimiter", deckerrors.ErrMalformedLine, Delimiter)
	}

	description := line[:idx]
	if description == "" {
		return record{}, deckerrors.ErrEmptyDescription
	}

	fields := strings.Fields(line[idx+len(Delimiter):])
	if len(fields) != trailerFields {
		return record{}, fmt.Errorf("%w: expected %d trailer fields, got %d",
			deckerrors.ErrMalformedLine, trailerFields, len(fields))
	}

	rank, err := strconv.Atoi(fields[0])
	if err != nil {
		return record{}, fmt.Errorf("%w: priority %q", deckerrors.ErrMalformedLine, fields[0])
	}
	priority, err := task.PriorityFromRank(rank)
	if err != nil {
		return record{}, err
	}

	completedInt, err := strconv.Atoi(fields[1])
	if err != nil {
		return record{}, fmt.Errorf("%w: completed flag %q", deckerrors.ErrMalformedLine, fields[1])
	}

	dueSecs, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return record{}, fmt.Errorf("%w: due date %q", deckerrors.ErrMalformedLine, fields[2])
	}

	return record{
		description: description,
		priority:    priority,
		completed:   completedInt != 0,
		due:         time.Unix(dueSecs, 0),
	}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
