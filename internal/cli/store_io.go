package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/config"
	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/task"
	"github.com/mrz1836/taskdeck/internal/taskfile"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// resolveTaskFile returns the task file path, preferring the --file flag over
// the configured path.
func resolveTaskFile(flags *GlobalFlags, cfg *config.Config) string {
	if flags.File != "" {
		return flags.File
	}
	return cfg.File
}

// loadConfigAndStore loads the effective configuration and the task store.
// Warnings from malformed task file lines are reported through out.
func loadConfigAndStore(ctx context.Context, flags *GlobalFlags, out tui.Output) (*config.Config, *task.Store, string, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load configuration: %w", err)
	}

	path := resolveTaskFile(flags, cfg)
	store, warnings, err := taskfile.Load(ctx, path)
	if err != nil {
		return nil, nil, "", err
	}
	for _, w := range warnings {
		out.Warning(w)
	}

	return cfg, store, path, nil
}

// saveStore persists the store to the task file.
func saveStore(ctx context.Context, path string, store *task.Store) error {
	return taskfile.Save(ctx, path, store)
}

// parseDueDate parses a YYYY-MM-DD due date string into a local-noon time.
func parseDueDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(task.DueDateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.ErrInvalidDate, "%q is not a valid date (expected YYYY-MM-DD)", s)
	}
	return task.NormalizeDue(t), nil
}

// defaultDue returns today's date at local noon from the given clock.
func defaultDue(clk clock.Clock) time.Time {
	return task.NormalizeDue(clk.Now())
}
