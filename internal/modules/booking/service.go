package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"utilibook/internal/domain"
	"utilibook/internal/repository"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Service struct {
	appts    AppointmentRepository
	clients  ClientRepository
	branches ExistenceChecker
	types    ExistenceChecker
	holidays HolidayCalendar
	settings CapacitySettings
	notifs   NotificationDispatcher

	now func() time.Time
}

func NewService(
	appts AppointmentRepository,
	clients ClientRepository,
	branches ExistenceChecker,
	types ExistenceChecker,
	holidays HolidayCalendar,
	settings CapacitySettings,
	notifs NotificationDispatcher,
) *Service {
	return &Service{
		appts:    appts,
		clients:  clients,
		branches: branches,
		types:    types,
		holidays: holidays,
		settings: settings,
		notifs:   notifs,
		now:      time.Now,
	}
}

// Schedule books an appointment. The calendar checks from the availability
// read path run again here: the resolver's snapshot is not trusted at write
// time. Capacity and the insert run inside one repository transaction, and
// the partial unique index settles any conflict the pre-checks missed.
func (s *Service) Schedule(ctx context.Context, req ScheduleRequest) (*domain.Appointment, error) {
	day, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !timePattern.MatchString(req.Time) {
		return nil, ErrInvalidTimeFormat
	}

	if day.Weekday() == time.Sunday {
		return nil, ErrSundayNotAvailable
	}
	holiday, err := s.holidays.IsHoliday(ctx, req.Date, req.BranchID)
	if err != nil {
		return nil, err
	}
	if holiday != nil {
		return nil, fmt.Errorf("%w: %s", ErrHolidayNotAvailable, holiday.Name)
	}
	if req.Date < s.now().UTC().Format(domain.DateFormat) {
		return nil, ErrPastDate
	}

	client, err := s.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if !client.Active {
		return nil, ErrClientNotFound
	}

	ok, err := s.branches.ExistsActive(ctx, req.BranchID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBranchNotFound
	}
	ok, err = s.types.ExistsActive(ctx, req.AppointmentTypeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTypeNotFound
	}

	appt := &domain.Appointment{
		AppointmentNumber: s.newAppointmentNumber(),
		ClientID:          client.ID,
		BranchID:          req.BranchID,
		AppointmentTypeID: req.AppointmentTypeID,
		Date:              req.Date,
		Time:              req.Time,
		Status:            domain.StatusConfirmed,
		Notes:             strings.TrimSpace(req.Notes),
		IsActive:          true,
		IsEnabled:         true,
	}

	maxPerDay := s.settings.MaxAppointmentsPerDay(ctx)
	if err := s.appts.CreateWithDailyCap(ctx, appt, maxPerDay); err != nil {
		switch {
		case errors.Is(err, repository.ErrDailyCapReached):
			return nil, ErrDailyCapacityExceeded
		case errors.Is(err, repository.ErrSlotTaken):
			return nil, ErrSlotUnavailable
		default:
			// Includes the (practically impossible) appointment-number
			// collision: opaque internal failure.
			return nil, err
		}
	}

	// Post-commit, best-effort. A dispatch failure never unwinds the booking.
	if s.notifs != nil {
		if err := s.notifs.AppointmentConfirmed(ctx, appt); err != nil {
			log.Printf("booking: confirmation notification failed for %s: %v", appt.AppointmentNumber, err)
		}
	}

	return appt, nil
}

// SchedulePublic resolves the client by its opaque number, then books.
func (s *Service) SchedulePublic(ctx context.Context, req PublicScheduleRequest) (*domain.Appointment, error) {
	client, err := s.clients.GetByNumber(ctx, strings.TrimSpace(req.ClientNumber))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	return s.Schedule(ctx, ScheduleRequest{
		ClientID:          client.ID,
		BranchID:          req.BranchID,
		AppointmentTypeID: req.AppointmentTypeID,
		Date:              req.Date,
		Time:              req.Time,
		Notes:             req.Notes,
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.appts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return appt, nil
}

// Verify answers the QR-code check: does this appointment number belong to
// this client number?
func (s *Service) Verify(ctx context.Context, appointmentNumber, clientNumber string) (*domain.Appointment, error) {
	appt, err := s.appts.GetByNumber(ctx, strings.TrimSpace(appointmentNumber))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	client, err := s.clients.GetByNumber(ctx, strings.TrimSpace(clientNumber))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationFailed
		}
		return nil, err
	}
	if appt.ClientID != client.ID {
		return nil, ErrVerificationFailed
	}
	return appt, nil
}

func (s *Service) List(ctx context.Context, f repository.AppointmentFilter) ([]domain.Appointment, error) {
	return s.appts.List(ctx, f)
}

// newAppointmentNumber builds APT-YYYYMMDD-XXXXXXXX. The suffix is an
// uppercase UUID fragment; the unique column catches the negligible
// collision case.
func (s *Service) newAppointmentNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("APT-%s-%s", s.now().UTC().Format("20060102"), suffix)
}
