package repository

import (
	"context"

	"gorm.io/gorm"

	"utilibook/internal/domain"
)

type AppointmentTypeRepository struct {
	db *gorm.DB
}

func NewAppointmentTypeRepository(db *gorm.DB) *AppointmentTypeRepository {
	return &AppointmentTypeRepository{db: db}
}

func (r *AppointmentTypeRepository) Create(ctx context.Context, t *domain.AppointmentType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *AppointmentTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AppointmentType, error) {
	var t domain.AppointmentType
	tx := r.db.WithContext(ctx).First(&t, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}

func (r *AppointmentTypeRepository) List(ctx context.Context) ([]domain.AppointmentType, error) {
	var rows []domain.AppointmentType
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentTypeRepository) ExistsActive(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.AppointmentType{}).
		Where("id = ? AND active = ?", id, true).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
