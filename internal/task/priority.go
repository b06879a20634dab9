// Package task provides the task record model and the in-memory store that
// owns the task collection for taskdeck.
//
// The store is an explicit object constructed once by the entry point and
// passed to every operation; there is no hidden process-wide state. All
// records handed out by the store are copies, so callers can never mutate
// the collection behind its back.
//
// IMPORTANT: This package may import internal/errors, but MUST NOT import
// internal/config, internal/cli, or internal/tui.
package task

import (
	"fmt"
	"strconv"

	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
)

// Priority is an ordinal urgency rank. Lower numeric rank means more urgent:
// Highest(1) through Lowest(5). The zero value is invalid.
type Priority int

// The five valid priority ranks.
const (
	PriorityHighest Priority = 1
	PriorityHigh    Priority = 2
	PriorityMedium  Priority = 3
	PriorityLow     Priority = 4
	PriorityLowest  Priority = 5
)

// ValidPriorities returns all valid priority ranks in rank order.
func ValidPriorities() []Priority {
	return []Priority{PriorityHighest, PriorityHigh, PriorityMedium, PriorityLow, PriorityLowest}
}

// IsValid checks if the priority is one of the five defined ranks.
func (p Priority) IsValid() bool {
	return p >= PriorityHighest && p <= PriorityLowest
}

// String returns the display label for the priority.
func (p Priority) String() string {
	switch p {
	case PriorityHighest:
		return "Highest"
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	case PriorityLowest:
		return "Lowest"
	default:
		return "Unknown"
	}
}

// Rank returns the numeric rank (1-5) for serialization and display.
func (p Priority) Rank() int {
	return int(p)
}

// ParsePriority converts a numeric string ("1".."5") to a Priority.
// Returns ErrInvalidPriority for non-numeric or out-of-range input.
func ParsePriority(s string) (Priority, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", deckerrors.ErrInvalidPriority, s)
	}
	return PriorityFromRank(n)
}

// PriorityFromRank converts a numeric rank to a Priority.
// Returns ErrInvalidPriority if the rank is outside 1-5.
func PriorityFromRank(n int) (Priority, error) {
	p := Priority(n)
	if !p.IsValid() {
		return 0, fmt.Errorf("%w: must be between %d and %d, got %d",
			deckerrors.ErrInvalidPriority, PriorityHighest.Rank(), PriorityLowest.Rank(), n)
	}
	return p, nil
}
