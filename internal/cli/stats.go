package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/taskdeck/internal/task"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// taskStats summarizes the state of the task file.
type taskStats struct {
	Total             int            `json:"total"`
	Completed         int            `json:"completed"`
	Pending           int            `json:"pending"`
	CompletionPercent float64        `json:"completion_percent"`
	ByPriority        map[string]int `json:"by_priority"`
}

// newStatsCmd creates the 'stats' subcommand for completion statistics.
func newStatsCmd(global *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task completion statistics",
		Long: `Show counts of completed and pending tasks, the completion percentage,
and a per-priority breakdown.

Examples:
  taskdeck stats
  taskdeck stats -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd.Context(), cmd.OutOrStdout(), global)
		},
		SilenceUsage: true,
	}
}

// AddStatsCommand adds the stats subcommand to the root command.
func AddStatsCommand(root *cobra.Command, global *GlobalFlags) {
	root.AddCommand(newStatsCmd(global))
}

// runStats executes the stats command.
func runStats(ctx context.Context, w io.Writer, global *GlobalFlags) error {
	out := tui.NewOutput(w, global.Output)

	_, store, _, err := loadConfigAndStore(ctx, global, out)
	if err != nil {
		out.Error(err)
		return err
	}

	stats := computeStats(store)

	if global.Output == OutputJSON {
		return out.JSON(stats)
	}

	out.Info(fmt.Sprintf("Total:     %d", stats.Total))
	out.Info(fmt.Sprintf("Completed: %d", stats.Completed))
	out.Info(fmt.Sprintf("Pending:   %d", stats.Pending))
	out.Info(fmt.Sprintf("Progress:  %.1f%%", stats.CompletionPercent))
	for _, p := range task.ValidPriorities() {
		if n := stats.ByPriority[p.String()]; n > 0 {
			out.Info(fmt.Sprintf("  %-8s %d", p.String()+":", n))
		}
	}
	return nil
}

// computeStats builds the statistics summary from the store.
func computeStats(store *task.Store) taskStats {
	stats := taskStats{
		ByPriority:        make(map[string]int),
		CompletionPercent: store.CompletionPercentage(),
	}

	for _, t := range store.List() {
		stats.Total++
		if t.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
		stats.ByPriority[t.Priority.String()]++
	}

	return stats
}
