package slots

import (
	"context"

	"utilibook/internal/domain"
)

type SlotRepository interface {
	Create(ctx context.Context, s *domain.TimeSlotConfig) error
	GetByID(ctx context.Context, id int64) (*domain.TimeSlotConfig, error)
	ExistsActive(ctx context.Context, branchID int64, t string, appointmentTypeID *int64) (bool, error)
	FindActive(ctx context.Context, branchID int64, appointmentTypeID *int64) ([]domain.TimeSlotConfig, error)
	Deactivate(ctx context.Context, id int64) error
}

type BranchChecker interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
}
