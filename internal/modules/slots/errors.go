package slots

import "errors"

var (
	ErrInvalidTimeFormat       = errors.New("time must be HH:mm")
	ErrDuplicateSlot           = errors.New("active slot already exists")
	ErrBranchNotFound          = errors.New("branch not found")
	ErrAppointmentTypeNotFound = errors.New("appointment type not found")
	ErrAlreadyInactive         = errors.New("slot already inactive")
	ErrNotFound                = errors.New("slot not found")
)
