package notification

import (
	"context"

	"utilibook/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByClient(ctx context.Context, clientID int64, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, clientID int64) (int64, error)
	MarkAsRead(ctx context.Context, id, clientID int64) error
	MarkAllAsRead(ctx context.Context, clientID int64) error
}

type ClientResolver interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByNumber(ctx context.Context, number string) (*domain.Client, error)
}
