package store

import "errors"

var (
	// ErrNotFound is returned when a user or plan does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPlanLimit is returned when adding a plan would exceed the
	// active-plan cap. Enforced here at the add boundary, not in SQL.
	ErrPlanLimit = errors.New("active plan limit reached")
	// ErrStaleRevision is returned when a progress write is based on an
	// older plan revision than the one stored.
	ErrStaleRevision = errors.New("stale plan revision")
	// ErrPlanArchived is returned when an operation requires an active plan.
	ErrPlanArchived = errors.New("plan is archived")
)
