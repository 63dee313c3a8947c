package availability

import "errors"

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

// Reason codes attached to an empty availability result.
const (
	ReasonSunday  = "SUNDAY_NOT_AVAILABLE"
	ReasonHoliday = "HOLIDAY_NOT_AVAILABLE"
	ReasonPast    = "PAST_DATE_NOT_AVAILABLE"
)
