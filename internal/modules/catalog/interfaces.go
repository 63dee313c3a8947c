package catalog

import (
	"context"

	"utilibook/internal/domain"
)

type BranchRepository interface {
	Create(ctx context.Context, b *domain.Branch) error
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
	List(ctx context.Context) ([]domain.Branch, error)
	Update(ctx context.Context, b *domain.Branch) error
}

type TypeRepository interface {
	Create(ctx context.Context, t *domain.AppointmentType) error
	GetByID(ctx context.Context, id int64) (*domain.AppointmentType, error)
	List(ctx context.Context) ([]domain.AppointmentType, error)
}

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByNumber(ctx context.Context, number string) (*domain.Client, error)
}
