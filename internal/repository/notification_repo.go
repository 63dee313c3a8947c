package repository

import (
	"context"

	"gorm.io/gorm"

	"utilibook/internal/domain"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByClient(ctx context.Context, clientID int64, limit int) ([]domain.Notification, error) {
	var rows []domain.Notification
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, clientID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("client_id = ? AND is_read = ?", clientID, false).
		Count(&cnt).Error
	return cnt, err
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, id, clientID int64) error {
	tx := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("id = ? AND client_id = ?", id, clientID).
		Update("is_read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, clientID int64) error {
	return r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("client_id = ? AND is_read = ?", clientID, false).
		Update("is_read", true).Error
}
