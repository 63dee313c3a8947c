package booking

import "errors"

var (
	ErrInvalidDate             = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTimeFormat       = errors.New("time must be HH:mm")
	ErrSundayNotAvailable      = errors.New("appointments are not available on Sundays")
	ErrHolidayNotAvailable     = errors.New("appointments are not available on holidays")
	ErrPastDate                = errors.New("date is in the past")
	ErrClientNotFound          = errors.New("client not found")
	ErrBranchNotFound          = errors.New("branch not found")
	ErrTypeNotFound            = errors.New("appointment type not found")
	ErrDailyCapacityExceeded   = errors.New("daily capacity exceeded for this branch")
	ErrSlotUnavailable         = errors.New("slot is no longer available")
	ErrNotFound                = errors.New("appointment not found")
	ErrAlreadyCompleted        = errors.New("appointment already completed")
	ErrAlreadyCancelled        = errors.New("appointment already cancelled")
	ErrCannotCompleteCancelled = errors.New("cannot complete a cancelled appointment")
	ErrCannotCancelCompleted   = errors.New("cannot cancel a completed appointment")
	ErrAlreadyDeleted          = errors.New("appointment already deleted")
	ErrVerificationFailed      = errors.New("appointment does not match client")
	ErrReasonRequired          = errors.New("cancellation reason is required")
)
