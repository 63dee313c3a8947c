package holidays

import (
	"context"

	"utilibook/internal/domain"
)

type HolidayRepository interface {
	Create(ctx context.Context, h *domain.Holiday) error
	GetByID(ctx context.Context, id int64) (*domain.Holiday, error)
	ExistsActive(ctx context.Context, date string, typ domain.HolidayType, branchID *int64) (bool, error)
	FindActiveForDate(ctx context.Context, date string) ([]domain.Holiday, error)
	FindInRange(ctx context.Context, start, end string, branchID *int64) ([]domain.Holiday, error)
	Update(ctx context.Context, h *domain.Holiday) error
	Deactivate(ctx context.Context, id int64) error
}

type BranchChecker interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
}
