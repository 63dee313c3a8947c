package holidays

import "errors"

var (
	ErrDateInPast       = errors.New("date is in the past")
	ErrDuplicateHoliday = errors.New("active holiday already covers this date")
	ErrInvalidRange     = errors.New("start must not be after end")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
	ErrBranchRequired   = errors.New("branch is required for local holidays")
	ErrBranchNotFound   = errors.New("branch not found")
	ErrNotFound         = errors.New("holiday not found")
)
