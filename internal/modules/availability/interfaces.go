package availability

import (
	"context"

	"utilibook/internal/domain"
)

type SlotCatalog interface {
	FindActive(ctx context.Context, branchID int64, appointmentTypeID *int64) ([]domain.TimeSlotConfig, error)
}

type HolidayCalendar interface {
	IsHoliday(ctx context.Context, date string, branchID int64) (*domain.Holiday, error)
}

type AppointmentReader interface {
	OccupiedTimes(ctx context.Context, branchID int64, date string) ([]string, error)
}
