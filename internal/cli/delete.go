package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// DeleteFlags holds flags specific to the delete command.
type DeleteFlags struct {
	// Yes skips the confirmation prompt.
	Yes bool
}

// newDeleteCmd creates the 'delete' subcommand for removing tasks.
func newDeleteCmd(global *GlobalFlags, flags *DeleteFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Long: `Delete a task from the task file.

Deleting a task does not renumber the remaining tasks, and the deleted id is
not reused for the rest of the session. Deleting an id that does not exist is
reported as a warning, not an error.

Examples:
  taskdeck delete 3
  taskdeck delete 3 --yes   # skip confirmation`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), cmd.OutOrStdout(), global, flags, args[0])
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "skip confirmation prompt")

	return cmd
}

// AddDeleteCommand adds the delete subcommand to the root command.
func AddDeleteCommand(root *cobra.Command, global *GlobalFlags) {
	flags := &DeleteFlags{}
	root.AddCommand(newDeleteCmd(global, flags))
}

// runDelete executes the delete command.
func runDelete(ctx context.Context, w io.Writer, global *GlobalFlags, flags *DeleteFlags, idArg string) error {
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

	target, err := store.Get(id)
	if err != nil {
		if stderrors.Is(err, errors.ErrTaskNotFound) {
			out.Warning(fmt.Sprintf("Task %d does not exist, nothing deleted", id))
			return nil
		}
		out.Error(err)
		return err
	}

	if !flags.Yes && global.Output != OutputJSON {
		confirmed, cerr := tui.Confirm(fmt.Sprintf("Delete task %d (%s)?", target.ID, target.Description), false)
		if cerr != nil {
			if stderrors.Is(cerr, tui.ErrMenuCanceled) {
				out.Info("Delete canceled.")
				return nil
			}
			return cerr
		}
		if !confirmed {
			out.Info("Delete canceled.")
			return nil
		}
	}

	if err := store.Delete(id); err != nil {
		out.Error(err)
		return err
	}

	if err := saveStore(ctx, path, store); err != nil {
		out.Error(err)
		return err
	}

	logger := GetLogger()
	logger.Info().Int("task_id", id).Msg("task deleted")

	if global.Output == OutputJSON {
		return out.JSON(map[string]any{"deleted": id})
	}
	out.Success(fmt.Sprintf("Deleted task %d: %s", target.ID, target.Description))
	return nil
}
