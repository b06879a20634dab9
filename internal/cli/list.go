package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/taskdeck/internal/config"
	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/task"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// ListFlags holds flags specific to the list command.
type ListFlags struct {
	// Completed limits output to completed tasks.
	Completed bool
	// Pending limits output to pending tasks.
	Pending bool
	// Sort orders the listing by "priority" or "due". Empty uses the
	// configured default.
	Sort string
	// Descending reverses the sort order.
	Descending bool
}

// taskListing is the JSON shape of a list invocation.
type taskListing struct {
	Tasks             []task.Task `json:"tasks"`
	Total             int         `json:"total"`
	CompletionPercent float64     `json:"completion_percent"`
}

// newListCmd creates the 'list' subcommand for displaying tasks.
func newListCmd(global *GlobalFlags, flags *ListFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks from the task file in a table.

By default all tasks are shown in file order. Filters narrow the listing to
completed or pending tasks, and --sort orders by priority or due date
without touching the file.

Examples:
  taskdeck list
  taskdeck list --pending --sort due
  taskdeck list --sort priority --desc
  taskdeck list -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), global, flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&flags.Completed, "completed", false, "show only completed tasks")
	cmd.Flags().BoolVar(&flags.Pending, "pending", false, "show only pending tasks")
	cmd.Flags().StringVarP(&flags.Sort, "sort", "s", "", "sort by \"priority\" or \"due\"")
	cmd.Flags().BoolVar(&flags.Descending, "desc", false, "sort in descending order")
	cmd.MarkFlagsMutuallyExclusive("completed", "pending")

	return cmd
}

// AddListCommand adds the list subcommand to the root command.
func AddListCommand(root *cobra.Command, global *GlobalFlags) {
	flags := &ListFlags{}
	root.AddCommand(newListCmd(global, flags))
}

// runList executes the list command.
func runList(ctx context.Context, w io.Writer, global *GlobalFlags, flags *ListFlags) error {
	out := tui.NewOutput(w, global.Output)

	cfg, store, _, err := loadConfigAndStore(ctx, global, out)
	if err != nil {
		out.Error(err)
		return err
	}

	sortKey := flags.Sort
	sortAscending := !flags.Descending
	if sortKey == "" && cfg.Sort.Key != config.SortNone {
		sortKey = cfg.Sort.Key
		if !flags.Descending {
			sortAscending = cfg.Sort.Ascending
		}
	}

	switch sortKey {
	case "", config.SortNone:
	case config.SortPriority:
		store.SortByPriority(sortAscending)
	case config.SortDue:
		store.SortByDueDate(sortAscending)
	default:
		err := errors.Wrapf(errors.ErrInvalidSortKey, "%q must be one of %v", sortKey, config.ValidSortKeys())
		out.Error(err)
		return err
	}

	tasks := store.List()
	switch {
	case flags.Completed:
		tasks = store.FilterByStatus(true)
	case flags.Pending:
		tasks = store.FilterByStatus(false)
	}

	if global.Output == OutputJSON {
		return out.JSON(taskListing{
			Tasks:             tasks,
			Total:             len(tasks),
			CompletionPercent: store.CompletionPercentage(),
		})
	}

	if len(tasks) == 0 {
		out.Info("No tasks found.")
		return nil
	}

	if err := tui.NewTaskTable(tasks).Render(w); err != nil {
		return err
	}
	out.Info(fmt.Sprintf("%d task(s), %.1f%% complete", len(tasks), store.CompletionPercentage()))
	return nil
}
