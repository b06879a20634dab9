package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/taskdeck/internal/task"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// DoneFlags holds flags specific to the done command.
type DoneFlags struct {
	// Undo marks the task pending instead of completed.
	Undo bool
}

// newDoneCmd creates the 'done' subcommand for toggling task completion.
func newDoneCmd(global *GlobalFlags, flags *DoneFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Long: `Mark a task as completed, or pending again with --undo.

Marking an already-completed task as done is a no-op and succeeds.

Examples:
  taskdeck done 3
  taskdeck done 3 --undo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDone(cmd.Context(), cmd.OutOrStdout(), global, flags, args[0])
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&flags.Undo, "undo", false, "mark the task as pending instead")

	return cmd
}

// AddDoneCommand adds the done subcommand to the root command.
func AddDoneCommand(root *cobra.Command, global *GlobalFlags) {
	flags := &DoneFlags{}
	root.AddCommand(newDoneCmd(global, flags))
}

// runDone executes the done command.
func runDone(ctx context.Context, w io.Writer, global *GlobalFlags, flags *DoneFlags, idArg string) error {
	out := tui.NewOutput(w, global.Output)

	id, err := parseTaskID(idArg)
	if err != nil {
		out.Error(err)
		return err
	}

	_, store, path, err := loadConfigAndStore(ctx, global, out)
	if err != nil {
		out.Error(err)
		return err
	}

	completed := !flags.Undo
	updated, err := store.Update(id, task.Patch{Completed: &completed})
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
		Int("task_id", updated.ID).
		Bool("completed", updated.Completed).
		Msg("task completion changed")

	if global.Output == OutputJSON {
		return out.JSON(updated)
	}
	if updated.Completed {
		out.Success(fmt.Sprintf("Completed task %d: %s", updated.ID, updated.Description))
	} else {
		out.Success(fmt.Sprintf("Task %d is pending again: %s", updated.ID, updated.Description))
	}
	return nil
}
