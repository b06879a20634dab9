package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/config"
	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/task"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// Menu action values.
const (
	menuActionAdd    = "add"
	menuActionList   = "list"
	menuActionFilter = "filter"
	menuActionEdit   = "edit"
	menuActionDone   = "done"
	menuActionDelete = "delete"
	menuActionSort   = "sort"
	menuActionStats  = "stats"
	menuActionSave   = "save"
	menuActionQuit   = "quit"
)

// newMenuCmd creates the 'menu' subcommand for interactive sessions.
func newMenuCmd(global *GlobalFlags, clk clock.Clock) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run an interactive task session",
		Long: `Run an interactive menu session.

The task file is loaded once at the start; all edits are made in memory and
written back when you quit (you are asked first, unless autosave is enabled
in the configuration). Requires an interactive terminal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd.Context(), cmd.OutOrStdout(), global, clk)
		},
		SilenceUsage: true,
	}
}

// AddMenuCommand adds the menu subcommand to the root command.
func AddMenuCommand(root *cobra.Command, global *GlobalFlags) {
	root.AddCommand(newMenuCmd(global, clock.RealClock{}))
}

// menuSession holds the state of one interactive session.
type menuSession struct {
	store *task.Store
	cfg   *config.Config
	path  string
	out   tui.Output
	w     io.Writer
	clk   clock.Clock
	dirty bool
}

// runMenu executes the menu command.
func runMenu(ctx context.Context, w io.Writer, global *GlobalFlags, clk clock.Clock) error {
	out := tui.NewOutput(w, global.Output)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		err := errors.Wrap(errors.ErrNonInteractiveMode, "the menu requires an interactive terminal")
		out.Error(err)
		return err
	}

	cfg, store, path, err := loadConfigAndStore(ctx, global, out)
	if err != nil {
		out.Error(err)
		return err
	}

	session := &menuSession{
		store: store,
		cfg:   cfg,
		path:  path,
		out:   out,
		w:     w,
		clk:   clk,
	}
	return session.run(ctx)
}

// run drives the menu loop until the user quits or cancels.
func (s *menuSession) run(ctx context.Context) error {
	options := []tui.Option{
		{Label: "Add a task", Value: menuActionAdd},
		{Label: "List tasks", Value: menuActionList},
		{Label: "Filter tasks by status", Value: menuActionFilter},
		{Label: "Edit a task", Value: menuActionEdit},
		{Label: "Mark a task done", Value: menuActionDone},
		{Label: "Delete a task", Value: menuActionDelete},
		{Label: "Sort tasks", Value: menuActionSort},
		{Label: "Show statistics", Value: menuActionStats},
		{Label: "Save tasks", Value: menuActionSave},
		{Label: "Quit", Value: menuActionQuit},
	}

	for {
		action, err := tui.Select("taskdeck", options)
		if err != nil {
			if stderrors.Is(err, tui.ErrMenuCanceled) {
				return s.finish(ctx)
			}
			return err
		}

		if action == menuActionQuit {
			return s.finish(ctx)
		}

		if err := s.dispatch(ctx, action); err != nil {
			if stderrors.Is(err, tui.ErrMenuCanceled) {
				continue
			}
			s.out.Error(err)
		}
	}
}

// dispatch runs one menu action against the in-memory store.
func (s *menuSession) dispatch(ctx context.Context, action string) error {
	switch action {
	case menuActionAdd:
		return s.addTask(ctx)
	case menuActionList:
		return s.listTasks()
	case menuActionFilter:
		return s.filterTasks()
	case menuActionEdit:
		return s.editTask(ctx)
	case menuActionDone:
		return s.markDone(ctx)
	case menuActionDelete:
		return s.deleteTask(ctx)
	case menuActionSort:
		return s.sortTasks(ctx)
	case menuActionStats:
		return s.showStats()
	case menuActionSave:
		return s.saveTasks(ctx)
	default:
		return errors.Wrapf(errors.ErrInvalidArgument, "unknown menu action %q", action)
	}
}

// finish saves pending changes (after confirmation unless autosave) and ends
// the session.
func (s *menuSession) finish(ctx context.Context) error {
	if !s.dirty {
		return nil
	}
	if !s.cfg.Autosave {
		save, err := tui.Confirm("Save changes before quitting?", true)
		if err != nil && !stderrors.Is(err, tui.ErrMenuCanceled) {
			return err
		}
		if err != nil || !save {
			s.out.Warning("Changes discarded.")
			return nil
		}
	}
	if err := saveStore(ctx, s.path, s.store); err != nil {
		s.out.Error(err)
		return err
	}
	s.out.Success("Tasks saved.")
	return nil
}

// markDirty records a pending change and autosaves when configured.
func (s *menuSession) markDirty(ctx context.Context) error {
	s.dirty = true
	if s.cfg.Autosave {
		if err := saveStore(ctx, s.path, s.store); err != nil {
			return err
		}
		s.dirty = false
	}
	return nil
}

func (s *menuSession) addTask(ctx context.Context) error {
	description, flags, err := promptForTask(&AddFlags{Priority: int(task.PriorityMedium)})
	if err != nil {
		return err
	}

	due := defaultDue(s.clk)
	if flags.Due != "" {
		if due, err = parseDueDate(flags.Due); err != nil {
			return err
		}
	}

	priority, err := task.PriorityFromRank(flags.Priority)
	if err != nil {
		return err
	}

	created, err := s.store.Add(description, priority, due)
	if err != nil {
		return err
	}
	s.out.Success(fmt.Sprintf("Added task %d: %s", created.ID, created.Description))
	return s.markDirty(ctx)
}

func (s *menuSession) listTasks() error {
	tasks := s.store.List()
	if len(tasks) == 0 {
		s.out.Info("No tasks yet.")
		return nil
	}
	if err := tui.NewTaskTable(tasks).Render(s.w); err != nil {
		return err
	}
	s.out.Info(fmt.Sprintf("%d task(s), %.1f%% complete", len(tasks), s.store.CompletionPercentage()))
	return nil
}

func (s *menuSession) filterTasks() error {
	status, err := tui.Select("Which tasks?", []tui.Option{
		{Label: "Pending", Value: "pending"},
		{Label: "Completed", Value: "completed"},
	})
	if err != nil {
		return err
	}

	tasks := s.store.FilterByStatus(status == "completed")
	if len(tasks) == 0 {
		s.out.Info("No matching tasks.")
		return nil
	}
	return tui.NewTaskTable(tasks).Render(s.w)
}

// saveTasks writes the store to disk without ending the session.
func (s *menuSession) saveTasks(ctx context.Context) error {
	if err := saveStore(ctx, s.path, s.store); err != nil {
		return err
	}
	s.dirty = false
	s.out.Success("Tasks saved.")
	return nil
}

// selectTask asks the user to pick one of the existing tasks.
func (s *menuSession) selectTask(title string) (task.Task, error) {
	tasks := s.store.List()
	if len(tasks) == 0 {
		return task.Task{}, errors.Wrap(errors.ErrTaskNotFound, "no tasks available")
	}

	options := make([]tui.Option, 0, len(tasks))
	for _, t := range tasks {
		options = append(options, tui.Option{
			Label: fmt.Sprintf("%d - %s (%s)", t.ID, t.Description, t.Status()),
			Value: fmt.Sprintf("%d", t.ID),
		})
	}

	value, err := tui.Select(title, options)
	if err != nil {
		return task.Task{}, err
	}
	id, err := parseTaskID(value)
	if err != nil {
		return task.Task{}, err
	}
	return s.store.Get(id)
}

func (s *menuSession) editTask(ctx context.Context) error {
	target, err := s.selectTask("Edit which task?")
	if err != nil {
		return err
	}

	description, err := tui.Input("Description", target.Description)
	if err != nil {
		return err
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
		return err
	}
	priority, err := task.ParsePriority(rank)
	if err != nil {
		return err
	}

	dueInput, err := tui.Input("Due date (YYYY-MM-DD)", task.FormatDue(target.DueDate))
	if err != nil {
		return err
	}
	due, err := parseDueDate(dueInput)
	if err != nil {
		return err
	}

	updated, err := s.store.Update(target.ID, task.Patch{
		Description: &description,
		Priority:    &priority,
		DueDate:     &due,
	})
	if err != nil {
		return err
	}
	s.out.Success(fmt.Sprintf("Updated task %d", updated.ID))
	return s.markDirty(ctx)
}

func (s *menuSession) markDone(ctx context.Context) error {
	target, err := s.selectTask("Mark which task done?")
	if err != nil {
		return err
	}

	completed := true
	updated, err := s.store.Update(target.ID, task.Patch{Completed: &completed})
	if err != nil {
		return err
	}
	s.out.Success(fmt.Sprintf("Completed task %d: %s", updated.ID, updated.Description))
	return s.markDirty(ctx)
}

func (s *menuSession) deleteTask(ctx context.Context) error {
	target, err := s.selectTask("Delete which task?")
	if err != nil {
		return err
	}

	confirmed, err := tui.Confirm(fmt.Sprintf("Delete task %d (%s)?", target.ID, target.Description), false)
	if err != nil {
		return err
	}
	if !confirmed {
		s.out.Info("Delete canceled.")
		return nil
	}

	if err := s.store.Delete(target.ID); err != nil {
		return err
	}
	s.out.Success(fmt.Sprintf("Deleted task %d", target.ID))
	return s.markDirty(ctx)
}

func (s *menuSession) sortTasks(ctx context.Context) error {
	key, err := tui.Select("Sort by", []tui.Option{
		{Label: "Priority (Highest first)", Value: config.SortPriority},
		{Label: "Due date (earliest first)", Value: config.SortDue},
	})
	if err != nil {
		return err
	}

	switch key {
	case config.SortPriority:
		s.store.SortByPriority(true)
	case config.SortDue:
		s.store.SortByDueDate(true)
	}
	s.out.Success(fmt.Sprintf("Sorted %d task(s) by %s", s.store.Len(), key))
	return s.markDirty(ctx)
}

func (s *menuSession) showStats() error {
	stats := computeStats(s.store)
	s.out.Info(fmt.Sprintf("Total: %d  Completed: %d  Pending: %d  Progress: %.1f%%",
		stats.Total, stats.Completed, stats.Pending, stats.CompletionPercent))
	return nil
}
