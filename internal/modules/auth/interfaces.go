package auth

import (
	"context"

	"utilibook/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.StaffUser) error
	GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error)
	GetByID(ctx context.Context, id int64) (*domain.StaffUser, error)
}

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}
