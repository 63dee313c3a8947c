package repository

import (
	"context"

	"gorm.io/gorm"

	"utilibook/internal/domain"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) GetValue(ctx context.Context, key string) (string, error) {
	var s domain.SystemSetting
	tx := r.db.WithContext(ctx).Where("key = ?", key).First(&s)
	if tx.Error != nil {
		return "", tx.Error
	}
	return s.Value, nil
}

func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	s := domain.SystemSetting{Key: key, Value: value}
	return r.db.WithContext(ctx).Save(&s).Error
}
