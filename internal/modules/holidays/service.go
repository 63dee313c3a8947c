package holidays

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"utilibook/internal/domain"
)

type Service struct {
	holidays HolidayRepository
	branches BranchChecker

	now func() time.Time
}

func NewService(holidays HolidayRepository, branches BranchChecker) *Service {
	return &Service{
		holidays: holidays,
		branches: branches,
		now:      time.Now,
	}
}

func (s *Service) CreateNationalHoliday(ctx context.Context, req CreateHolidayRequest) (*domain.Holiday, error) {
	return s.create(ctx, domain.HolidayNational, req.Date, req.Name, nil)
}

func (s *Service) CreateCompanyHoliday(ctx context.Context, req CreateHolidayRequest) (*domain.Holiday, error) {
	return s.create(ctx, domain.HolidayCompany, req.Date, req.Name, nil)
}

func (s *Service) CreateLocalHoliday(ctx context.Context, req CreateHolidayRequest) (*domain.Holiday, error) {
	if req.BranchID == nil {
		return nil, ErrBranchRequired
	}
	ok, err := s.branches.ExistsActive(ctx, *req.BranchID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBranchNotFound
	}
	return s.create(ctx, domain.HolidayLocal, req.Date, req.Name, req.BranchID)
}

func (s *Service) create(ctx context.Context, typ domain.HolidayType, date, name string, branchID *int64) (*domain.Holiday, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return nil, ErrInvalidDate
	}
	if date < s.today() {
		return nil, ErrDateInPast
	}

	exists, err := s.holidays.ExistsActive(ctx, date, typ, branchID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateHoliday
	}

	h := &domain.Holiday{
		Date:     date,
		Name:     strings.TrimSpace(name),
		Type:     typ,
		BranchID: branchID,
		Active:   true,
	}
	if err := s.holidays.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// IsHoliday reports whether the branch is closed on the date, with the
// applicable holiday when so. Holidays for other branches on the same date do
// not count.
func (s *Service) IsHoliday(ctx context.Context, date string, branchID int64) (*domain.Holiday, error) {
	rows, err := s.holidays.FindActiveForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].AppliesToBranch(branchID) {
			return &rows[i], nil
		}
	}
	return nil, nil
}

func (s *Service) GetHolidaysInRange(ctx context.Context, start, end string, branchID *int64) ([]domain.Holiday, error) {
	for _, d := range []string{start, end} {
		if _, err := time.Parse(domain.DateFormat, d); err != nil {
			return nil, ErrInvalidDate
		}
	}
	if start > end {
		return nil, ErrInvalidRange
	}
	return s.holidays.FindInRange(ctx, start, end, branchID)
}

func (s *Service) UpdateHoliday(ctx context.Context, id int64, req UpdateHolidayRequest) (*domain.Holiday, error) {
	h, err := s.holidays.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Date != nil && *req.Date != h.Date {
		newDate := strings.TrimSpace(*req.Date)
		if _, err := time.Parse(domain.DateFormat, newDate); err != nil {
			return nil, ErrInvalidDate
		}
		if newDate < s.today() {
			return nil, ErrDateInPast
		}
		exists, err := s.holidays.ExistsActive(ctx, newDate, h.Type, h.BranchID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateHoliday
		}
		h.Date = newDate
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		h.Name = strings.TrimSpace(*req.Name)
	}

	if err := s.holidays.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) DeactivateHoliday(ctx context.Context, id int64) error {
	if err := s.holidays.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// today is the server date in UTC.
func (s *Service) today() string {
	return s.now().UTC().Format(domain.DateFormat)
}
