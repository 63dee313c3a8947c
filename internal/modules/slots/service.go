package slots

import (
	"context"
	"errors"
	"regexp"
	"sort"

	"gorm.io/gorm"

	"utilibook/internal/domain"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Service struct {
	slots    SlotRepository
	branches BranchChecker
	types    BranchChecker
}

func NewService(slots SlotRepository, branches, types BranchChecker) *Service {
	return &Service{slots: slots, branches: branches, types: types}
}

func (s *Service) AddSlot(ctx context.Context, req AddSlotRequest) (*domain.TimeSlotConfig, error) {
	if !timePattern.MatchString(req.Time) {
		return nil, ErrInvalidTimeFormat
	}

	ok, err := s.branches.ExistsActive(ctx, req.BranchID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBranchNotFound
	}

	if req.AppointmentTypeID != nil {
		ok, err := s.types.ExistsActive(ctx, *req.AppointmentTypeID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrAppointmentTypeNotFound
		}
	}

	exists, err := s.slots.ExistsActive(ctx, req.BranchID, req.Time, req.AppointmentTypeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateSlot
	}

	slot := &domain.TimeSlotConfig{
		BranchID:          req.BranchID,
		AppointmentTypeID: req.AppointmentTypeID,
		Time:              req.Time,
		Active:            true,
	}
	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *Service) DeactivateSlot(ctx context.Context, id int64) error {
	slot, err := s.slots.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !slot.Active {
		return ErrAlreadyInactive
	}
	return s.slots.Deactivate(ctx, id)
}

// ListSlots returns active slots sorted ascending by time-of-day. The
// availability resolver relies on this ordering.
func (s *Service) ListSlots(ctx context.Context, branchID int64, appointmentTypeID *int64) ([]domain.TimeSlotConfig, error) {
	rows, err := s.slots.FindActive(ctx, branchID, appointmentTypeID)
	if err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool {
		return timeOfDayLess(rows[i].Time, rows[j].Time)
	})
	return rows, nil
}

// BulkAddSlots validates and inserts each time independently. One bad entry
// in a batch of fifty must not block the other forty-nine.
func (s *Service) BulkAddSlots(ctx context.Context, req BulkAddRequest) (*BulkAddResult, error) {
	res := &BulkAddResult{}
	for _, t := range req.Times {
		_, err := s.AddSlot(ctx, AddSlotRequest{
			BranchID:          req.BranchID,
			Time:              t,
			AppointmentTypeID: req.AppointmentTypeID,
		})
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, BulkEntryError{Time: t, Reason: err.Error()})
			continue
		}
		res.Created++
	}
	return res, nil
}

// timeOfDayLess compares HH:mm strings by minutes since midnight. Validated
// slot times always sort correctly as strings too; this keeps the ordering
// honest should an unpadded value ever reach storage.
func timeOfDayLess(a, b string) bool {
	return minutesOf(a) < minutesOf(b)
}

func minutesOf(t string) int {
	if len(t) != 5 {
		return 0
	}
	h := int(t[0]-'0')*10 + int(t[1]-'0')
	m := int(t[3]-'0')*10 + int(t[4]-'0')
	return h*60 + m
}
