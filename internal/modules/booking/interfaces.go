package booking

import (
	"context"
	"time"

	"utilibook/internal/domain"
	"utilibook/internal/repository"
)

type AppointmentRepository interface {
	CreateWithDailyCap(ctx context.Context, appt *domain.Appointment, maxPerDay int) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByNumber(ctx context.Context, number string) (*domain.Appointment, error)
	MarkCompleted(ctx context.Context, id int64, notes *string, at time.Time) error
	MarkCancelled(ctx context.Context, id int64, reason string, at time.Time) error
	LogicalDelete(ctx context.Context, id int64, at time.Time) error
	List(ctx context.Context, f repository.AppointmentFilter) ([]domain.Appointment, error)
}

type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByNumber(ctx context.Context, number string) (*domain.Client, error)
}

type ExistenceChecker interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
}

type HolidayCalendar interface {
	IsHoliday(ctx context.Context, date string, branchID int64) (*domain.Holiday, error)
}

type CapacitySettings interface {
	MaxAppointmentsPerDay(ctx context.Context) int
}

// NotificationDispatcher delivers best-effort messages after the state change
// commits. Errors are logged by the caller and never propagated.
type NotificationDispatcher interface {
	AppointmentConfirmed(ctx context.Context, appt *domain.Appointment) error
	AppointmentCancelled(ctx context.Context, appt *domain.Appointment) error
}
