package repository

import "errors"

var (
	// ErrSlotTaken maps the idx_no_double_booking unique violation: another
	// non-terminal appointment already holds the (branch, date, time) tuple.
	ErrSlotTaken = errors.New("slot already taken")

	// ErrDailyCapReached is returned from the capacity-guarded create.
	ErrDailyCapReached = errors.New("daily capacity reached")

	// ErrDuplicateNumber means the generated appointment number collided.
	// Treated as an internal failure, never retried.
	ErrDuplicateNumber = errors.New("appointment number collision")
)
