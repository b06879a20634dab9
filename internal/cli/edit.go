package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/task"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// EditFlags holds flags specific to the edit command.
type EditFlags struct {
	// Description is the new task description.
	Description string
	// Priority is the new priority rank.
	Priority int
	// Due is the new due date in YYYY-MM-DD format.
	Due string
	// Done marks the task completed.
	Done bool
	// Undone reopens a completed task.
	Undone bool
}

// newEditCmd creates the 'edit' subcommand for updating tasks.
func newEditCmd(global *GlobalFlags, flags *EditFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing task",
		Long: `Edit fields of an existing task.

Only the fields provided via flags are changed. The update is atomic: if any
new value fails validation, the task is left exactly as it was. With no flags
and an interactive terminal, the task is edited through a form prefilled with
its current values.

Examples:
  taskdeck edit 3 --description "Write final report"
  taskdeck edit 3 --priority 1 --due 2026-09-20
  taskdeck edit 3 --done`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd.Context(), cmd.OutOrStdout(), cmd, global, flags, args[0])
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&flags.Description, "description", "", "new description")
	cmd.Flags().IntVarP(&flags.Priority, "priority", "p", 0, "new priority rank (1=Highest to 5=Lowest)")
	cmd.Flags().StringVarP(&flags.Due, "due", "d", "", "new due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&flags.Done, "done", false, "mark the task completed")
	cmd.Flags().BoolVar(&flags.Undone, "undone", false, "reopen a completed task")
	cmd.MarkFlagsMutuallyExclusive("done", "undone")

	return cmd
}

// AddEditCommand adds the edit subcommand to the root command.
func AddEditCommand(root *cobra.Command, global *GlobalFlags) {
	flags := &EditFlags{}
	root.AddCommand(newEditCmd(global, flags))
}

// runEdit executes the edit command.
func runEdit(ctx context.Context, w io.Writer, cmd *cobra.Command, global *GlobalFlags, flags *EditFlags, idArg string) error {
	out := tui.NewOutput(w, global.Output)

	id, err := parseTaskID(idArg)
	if err != nil {
		out.Error(err)
		return err
	}

	patch, err := buildPatch(cmd, flags)
	if err != nil {
		out.Error(err)
		return err
	}

	_, store, path, err := loadConfigAndStore(ctx, global, out)
	if err != nil {
		out.Error(err)
		return err
	}

	if patch.IsZero() {
		current, getErr := store.Get(id)
		if getErr != nil {
			out.Error(getErr)
			return getErr
		}
		if patch, err = promptEditPatch(current); err != nil {
			out.Error(err)
			return err
		}
	}

	updated, err := store.Update(id, patch)
	if err != nil {
		out.Error(err)
		return err
	}

	if err := saveStore(ctx, path, store); err != nil {
		out.Error(err)
		return err
	}

	logger := GetLogger()
	logger.Info().Int("task_id", updated.ID).Msg("task updated")

	if global.Output == OutputJSON {
		return out.JSON(updated)
	}
	out.Success(fmt.Sprintf("Updated task %d: %s (%s, due %s)",
		updated.ID, updated.Description, updated.Priority, task.FormatDue(updated.DueDate)))
	return nil
}

// buildPatch converts changed edit flags into a task patch.
// Unchanged flags are left nil so the store keeps the existing values.
func buildPatch(cmd *cobra.Command, flags *EditFlags) (task.Patch, error) {
	var patch task.Patch

	if cmd.Flags().Changed("description") {
		if err := validateDescription(flags.Description); err != nil {
			return task.Patch{}, err
		}
		patch.Description = &flags.Description
	}
	if cmd.Flags().Changed("priority") {
		priority, err := task.PriorityFromRank(flags.Priority)
		if err != nil {
			return task.Patch{}, err
		}
		patch.Priority = &priority
	}
	if cmd.Flags().Changed("due") {
		due, err := parseDueDate(flags.Due)
		if err != nil {
			return task.Patch{}, err
		}
		patch.DueDate = &due
	}
	if cmd.Flags().Changed("done") {
		patch.Completed = &flags.Done
	}
	if cmd.Flags().Changed("undone") {
		completed := !flags.Undone
		patch.Completed = &completed
	}

	return patch, nil
}

// promptEditPatch collects replacement values for every field, prefilled
// with the task's current state.
func promptEditPatch(current task.Task) (task.Patch, error) {
	description, err := tui.InputWithValidation("Description", current.Description, validateDescription)
	if err != nil {
		return task.Patch{}, err
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
		return task.Patch{}, err
	}
	priority, err := task.ParsePriority(rank)
	if err != nil {
		return task.Patch{}, err
	}

	dueInput, err := tui.Input("Due date (YYYY-MM-DD)", task.FormatDue(current.DueDate))
	if err != nil {
		return task.Patch{}, err
	}
	due, err := parseDueDate(dueInput)
	if err != nil {
		return task.Patch{}, err
	}

	return task.Patch{
		Description: &description,
		Priority:    &priority,
		DueDate:     &due,
	}, nil
}

// parseTaskID parses a task id argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, errors.Wrapf(errors.ErrInvalidArgument, "%q is not a valid task id", arg)
	}
	return id, nil
}
