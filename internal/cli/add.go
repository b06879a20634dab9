package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/task"
	"github.com/mrz1836/taskdeck/internal/taskfile"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// AddFlags holds flags specific to the add command.
type AddFlags struct {
	// Priority is the task priority rank (1=Highest to 5=Lowest).
	Priority int
	// Due is the due date in YYYY-MM-DD format. Empty means today.
	Due string
}

// newAddCmd creates the 'add' subcommand for creating tasks.
func newAddCmd(global *GlobalFlags, flags *AddFlags, clk clock.Clock) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [description]",
		Short: "Add a new task",
		Long: `Add a new task to the task file.

With a description argument the task is created directly from flags. Without
arguments an interactive form prompts for the description, priority, and due
date.

Examples:
  taskdeck add "Write report" --priority 1 --due 2026-09-15
  taskdeck add "Water plants"          # medium priority, due today
  taskdeck add                         # interactive form`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := ""
			interactive := len(args) == 0
			if !interactive {
				description = args[0]
			}
			return runAdd(cmd.Context(), cmd.OutOrStdout(), global, flags, clk, description, interactive)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVarP(&flags.Priority, "priority", "p", int(task.PriorityMedium), "priority rank (1=Highest to 5=Lowest)")
	cmd.Flags().StringVarP(&flags.Due, "due", "d", "", "due date (YYYY-MM-DD, default today)")

	return cmd
}

// AddAddCommand adds the add subcommand to the root command.
func AddAddCommand(root *cobra.Command, global *GlobalFlags) {
	flags := &AddFlags{}
	root.AddCommand(newAddCmd(global, flags, clock.RealClock{}))
}

// runAdd executes the add command.
func runAdd(ctx context.Context, w io.Writer, global *GlobalFlags, flags *AddFlags, clk clock.Clock, description string, interactive bool) error {
	out := tui.NewOutput(w, global.Output)

	_, store, path, err := loadConfigAndStore(ctx, global, out)
	if err != nil {
		out.Error(err)
		return err
	}

	if interactive {
		description, flags, err = promptForTask(flags)
		if err != nil {
			return err
		}
	} else if err := validateDescription(description); err != nil {
		out.Error(err)
		return err
	}

	due := defaultDue(clk)
	if flags.Due != "" {
		due, err = parseDueDate(flags.Due)
		if err != nil {
			out.Error(err)
			return err
		}
	}

	priority, err := task.PriorityFromRank(flags.Priority)
	if err != nil {
		out.Error(err)
		return err
	}

	created, err := store.Add(description, priority, due)
	if err != nil {
		out.Error(err)
		return err
	}

	if err := saveStore(ctx, path, store); err != nil {
		out.Error(err)
		return err
	}

	logger := GetLogger()
	logger.Info().
		Int("task_id", created.ID).
		Str("priority", created.Priority.String()).
		Msg("task added")

	if global.Output == OutputJSON {
		return out.JSON(created)
	}
	out.Success(fmt.Sprintf("Added task %d: %s (%s, due %s)",
		created.ID, created.Description, created.Priority, task.FormatDue(created.DueDate)))
	return nil
}

// validateDescription rejects descriptions that cannot survive the task file
// format. Neither the record delimiter nor line breaks may appear in a
// description.
func validateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.ErrEmptyDescription
	}
	if strings.Contains(s, taskfile.Delimiter) {
		return errors.Wrapf(errors.ErrInvalidArgument, "description cannot contain %q", taskfile.Delimiter)
	}
	// Line breaks would split the record across file lines on save.
	if strings.ContainsAny(s, "\n\r") {
		return errors.Wrap(errors.ErrInvalidArgument, "description cannot contain line breaks")
	}
	return nil
}

// promptForTask collects task fields interactively.
func promptForTask(flags *AddFlags) (string, *AddFlags, error) {
	description, err := tui.InputWithValidation("Task description", "", validateDescription)
	if err != nil {
		return "", nil, err
	}

	options := make([]tui.Option, 0, len(task.ValidPriorities()))
	for _, p := range task.ValidPriorities() {
		options = append(options, tui.Option{
			Label: fmt.Sprintf("%d - %s", p.Rank(), p),
			Value: fmt.Sprintf("%d", p.Rank()),
		})
	}
	rank, err := tui.Select("Priority", options)
	if err != nil {
		return "", nil, err
	}
	priority, err := task.ParsePriority(rank)
	if err != nil {
		return "", nil, err
	}

	due, err := tui.InputWithValidation("Due date (YYYY-MM-DD, empty for today)", "", func(s string) error {
		if s == "" {
			return nil
		}
		if _, perr := time.ParseInLocation(task.DueDateFormat, s, time.Local); perr != nil {
			return errors.Wrapf(errors.ErrInvalidDate, "%q is not a valid date", s)
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	return description, &AddFlags{Priority: priority.Rank(), Due: due}, nil
}
