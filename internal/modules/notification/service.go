package notification

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"utilibook/internal/domain"
)

var ErrClientNotFound = errors.New("client not found")

// Service is the read side of the feed: clients list and acknowledge their
// notifications by client number.
type Service struct {
	notifications NotificationRepository
	clients       ClientResolver
}

func NewService(notifications NotificationRepository, clients ClientResolver) *Service {
	return &Service{notifications: notifications, clients: clients}
}

func (s *Service) resolveClient(ctx context.Context, clientNumber string) (*domain.Client, error) {
	client, err := s.clients.GetByNumber(ctx, clientNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *Service) GetClientNotifications(ctx context.Context, clientNumber string, limit int) ([]domain.Notification, int64, error) {
	client, err := s.resolveClient(ctx, clientNumber)
	if err != nil {
		return nil, 0, err
	}

	list, err := s.notifications.ListByClient(ctx, client.ID, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.notifications.CountUnread(ctx, client.ID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, id int64, clientNumber string) error {
	client, err := s.resolveClient(ctx, clientNumber)
	if err != nil {
		return err
	}
	return s.notifications.MarkAsRead(ctx, id, client.ID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, clientNumber string) error {
	client, err := s.resolveClient(ctx, clientNumber)
	if err != nil {
		return err
	}
	return s.notifications.MarkAllAsRead(ctx, client.ID)
}
