package task

import (
	"fmt"
	"sort"
	"time"

	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
)

// Store is the sole authority over the task collection. It assigns ids,
// enforces validation invariants, and applies mutations. The collection
// order is insertion order until explicitly re-sorted in place.
//
// Store is not safe for concurrent use; taskdeck operations are
// single-threaded and run to completion before the next is issued.
type Store struct {
	tasks  []Task
	nextID int
}

// NewStore creates an empty store. The first assigned id is 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Patch describes a partial mutation of a task. Nil fields are left
// unchanged; present fields are applied together or not at all.
type Patch struct {
	Description *string
	Priority    *Priority
	Completed   *bool
	DueDate     *time.Time
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Description == nil && p.Priority == nil && p.Completed == nil && p.DueDate == nil
}

// Add validates and appends a new task, returning a copy of the stored
// record. The due date is normalized to local noon. Identical descriptions
// are permitted; only ids are unique.
func (s *Store) Add(description string, priority Priority, due time.Time) (Task, error) {
	if err := Validate(description, priority); err != nil {
		return Task{}, err
	}

	t := Task{
		ID:          s.nextID,
		Description: description,
		Priority:    priority,
		Completed:   false,
		DueDate:     NormalizeDue(due),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id int) (Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Task{}, fmt.Errorf("%w: id %d", deckerrors.ErrTaskNotFound, id)
	}
	return s.tasks[idx], nil
}

// Update applies a partial update atomically. The merged candidate state
// (new values where provided, current values otherwise) is validated before
// any field is committed; on validation failure the record is unchanged.
// Completed and DueDate carry no validation beyond type and are applied
// together with the validated fields. Returns a copy of the updated record.
func (s *Store) Update(id int, p Patch) (Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Task{}, fmt.Errorf("%w: id %d", deckerrors.ErrTaskNotFound, id)
	}

	// Build the merged candidate before touching the stored record.
	candidate := s.tasks[idx]
	if p.Description != nil {
		candidate.Description = *p.Description
	}
	if p.Priority != nil {
		candidate.Priority = *p.Priority
	}
	if p.Completed != nil {
		candidate.Completed = *p.Completed
	}
	if p.DueDate != nil {
		candidate.DueDate = NormalizeDue(*p.DueDate)
	}

	if err := Validate(candidate.Description, candidate.Priority); err != nil {
		return Task{}, err
	}

	s.tasks[idx] = candidate
	return candidate, nil
}

// Delete removes the task with the given id. Deleting a nonexistent id
// returns ErrTaskNotFound; callers treat it as a non-fatal warning, so the
// operation is idempotent in effect.
func (s *Store) Delete(id int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", deckerrors.ErrTaskNotFound, id)
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	return nil
}

// SortByPriority reorders the collection in place by priority rank.
// Ascending means Highest rank first. Relative order of equal priorities
// is preserved.
func (s *Store) SortByPriority(ascending bool) {
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if ascending {
			return s.tasks[i].Priority < s.tasks[j].Priority
		}
		return s.tasks[i].Priority > s.tasks[j].Priority
	})
}

// SortByDueDate reorders the collection in place by due date.
// Relative order of equal dates is preserved.
func (s *Store) SortByDueDate(ascending bool) {
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if ascending {
			return s.tasks[i].DueDate.Before(s.tasks[j].DueDate)
		}
		return s.tasks[i].DueDate.After(s.tasks[j].DueDate)
	})
}

// FilterByStatus returns copies of the tasks matching the completion flag,
// in current collection order. The collection itself is not mutated. An
// empty result is indistinguishable from an empty store through this method;
// callers use Len to tell the two apart.
func (s *Store) FilterByStatus(completed bool) []Task {
	matched := make([]Task, 0)
	for _, t := range s.tasks {
		if t.Completed == completed {
			matched = append(matched, t)
		}
	}
	return matched
}

// CompletionPercentage returns 100*completed/total, or exactly 0 for an
// empty store.
func (s *Store) CompletionPercentage() float64 {
	if len(s.tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range s.tasks {
		if t.Completed {
			completed++
		}
	}
	return 100 * float64(completed) / float64(len(s.tasks))
}

// List returns a snapshot of the full collection in current order.
func (s *Store) List() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the total number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// NextID returns the id that the next Add will assign. It is always
// 1 + max(existing ids), recomputed implicitly by the running counter.
func (s *Store) NextID() int {
	return s.nextID
}

// indexOf returns the position of the task with the given id, or -1.
func (s *Store) indexOf(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
