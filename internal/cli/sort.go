package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/taskdeck/internal/config"
	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// SortFlags holds flags specific to the sort command.
type SortFlags struct {
	// Descending reverses the sort order.
	Descending bool
}

// newSortCmd creates the 'sort' subcommand for reordering the task file.
func newSortCmd(global *GlobalFlags, flags *SortFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort <priority|due>",
		Short: "Sort tasks and persist the new order",
		Long: `Sort tasks by priority or due date and write the new order back to the
task file. Tasks that compare equal keep their relative order.

Note that task ids are derived from line order when the file is loaded, so
a persisted sort renumbers tasks on the next invocation.

Examples:
  taskdeck sort priority
  taskdeck sort due --desc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd.Context(), cmd.OutOrStdout(), global, flags, args[0])
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&flags.Descending, "desc", false, "sort in descending order")

	return cmd
}

// AddSortCommand adds the sort subcommand to the root command.
func AddSortCommand(root *cobra.Command, global *GlobalFlags) {
	flags := &SortFlags{}
	root.AddCommand(newSortCmd(global, flags))
}

// runSort executes the sort command.
func runSort(ctx context.Context, w io.Writer, global *GlobalFlags, flags *SortFlags, key string) error {
	out := tui.NewOutput(w, global.Output)

	_, store, path, err := loadConfigAndStore(ctx, global, out)
	if err != nil {
		out.Error(err)
		return err
	}

	ascending := !flags.Descending
	switch key {
	case config.SortPriority:
		store.SortByPriority(ascending)
	case config.SortDue:
		store.SortByDueDate(ascending)
	default:
		err := errors.Wrapf(errors.ErrInvalidSortKey, "%q must be %q or %q", key, config.SortPriority, config.SortDue)
		out.Error(err)
		return err
	}

	if err := saveStore(ctx, path, store); err != nil {
		out.Error(err)
		return err
	}

	logger := GetLogger()
	logger.Info().Str("key", key).Bool("ascending", ascending).Msg("task file sorted")

	if global.Output == OutputJSON {
		return out.JSON(map[string]any{"sorted_by": key, "ascending": ascending, "tasks": store.List()})
	}
	out.Success(fmt.Sprintf("Sorted %d task(s) by %s", store.Len(), key))
	return nil
}
