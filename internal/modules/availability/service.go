package availability

import (
	"context"
	"sort"
	"time"

	"utilibook/internal/domain"
)

// Result is the read-path answer for one (branch, date) query. Times is empty
// whenever Reason is set. It is a best-effort snapshot: the booking transactor
// re-validates at write time.
type Result struct {
	BranchID    int64    `json:"branch_id"`
	Date        string   `json:"date"`
	Times       []string `json:"times"`
	Reason      string   `json:"reason,omitempty"`
	HolidayName string   `json:"holiday_name,omitempty"`
}

type Service struct {
	slots    SlotCatalog
	holidays HolidayCalendar
	appts    AppointmentReader

	now func() time.Time
}

func NewService(slots SlotCatalog, holidays HolidayCalendar, appts AppointmentReader) *Service {
	return &Service{
		slots:    slots,
		holidays: holidays,
		appts:    appts,
		now:      time.Now,
	}
}

// GetAvailableTimes computes the bookable times for a branch day: configured
// catalog times minus occupied times, unless the whole day is closed
// (Sunday, holiday, past date). Pure read; never mutates state.
func (s *Service) GetAvailableTimes(ctx context.Context, branchID int64, date string, appointmentTypeID *int64) (*Result, error) {
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	res := &Result{BranchID: branchID, Date: date, Times: []string{}}

	if day.Weekday() == time.Sunday {
		res.Reason = ReasonSunday
		return res, nil
	}

	holiday, err := s.holidays.IsHoliday(ctx, date, branchID)
	if err != nil {
		return nil, err
	}
	if holiday != nil {
		res.Reason = ReasonHoliday
		res.HolidayName = holiday.Name
		return res, nil
	}

	if date < s.now().UTC().Format(domain.DateFormat) {
		res.Reason = ReasonPast
		return res, nil
	}

	configured, err := s.slots.FindActive(ctx, branchID, appointmentTypeID)
	if err != nil {
		return nil, err
	}
	if len(configured) == 0 {
		return res, nil
	}

	occupied, err := s.appts.OccupiedTimes(ctx, branchID, date)
	if err != nil {
		return nil, err
	}

	res.Times = subtractOccupied(configured, occupied)
	return res, nil
}

// subtractOccupied drops occupied times and sorts by time-of-day, not
// lexically, so "09:30" never lands after "10:00" edits to the catalog.
func subtractOccupied(configured []domain.TimeSlotConfig, occupied []string) []string {
	taken := make(map[string]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}

	seen := make(map[string]struct{}, len(configured))
	out := make([]string, 0, len(configured))
	for _, slot := range configured {
		if _, ok := taken[slot.Time]; ok {
			continue
		}
		// Branch-wide and type-specific slots can configure the same time.
		if _, ok := seen[slot.Time]; ok {
			continue
		}
		seen[slot.Time] = struct{}{}
		out = append(out, slot.Time)
	}

	sort.Slice(out, func(i, j int) bool {
		ti, _ := time.Parse(domain.TimeFormat, out[i])
		tj, _ := time.Parse(domain.TimeFormat, out[j])
		return ti.Before(tj)
	})
	return out
}
