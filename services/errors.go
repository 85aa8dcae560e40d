package services

import (
	"errors"
	"fmt"
)

var (
	ErrNoStaffAssigned      = errors.New("at least one staff member must be assigned")
	ErrRoomNotFound         = errors.New("room not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrNoTasksForRoom       = errors.New("no tasks found for this room")
	ErrCancelReasonRequired = errors.New("a cancellation reason is required")
)

// InvalidTransitionError is returned when a requested task status change
// is not in the transition table.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %q -> %q", e.From, e.To)
}
