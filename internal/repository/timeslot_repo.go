package repository

import (
	"context"

	"gorm.io/gorm"

	"utilibook/internal/domain"
)

type TimeSlotRepository struct {
	db *gorm.DB
}

func NewTimeSlotRepository(db *gorm.DB) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

func (r *TimeSlotRepository) Create(ctx context.Context, s *domain.TimeSlotConfig) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *TimeSlotRepository) GetByID(ctx context.Context, id int64) (*domain.TimeSlotConfig, error) {
	var s domain.TimeSlotConfig
	tx := r.db.WithContext(ctx).First(&s, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

// ExistsActive reports whether an active slot already covers the key. A nil
// appointmentTypeID matches only branch-wide slots.
func (r *TimeSlotRepository) ExistsActive(ctx context.Context, branchID int64, t string, appointmentTypeID *int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.TimeSlotConfig{}).
		Where("branch_id = ? AND time = ? AND active = ?", branchID, t, true)
	if appointmentTypeID != nil {
		q = q.Where("appointment_type_id = ?", *appointmentTypeID)
	} else {
		q = q.Where("appointment_type_id IS NULL")
	}

	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// FindActive returns active slots ordered by time ascending. When
// appointmentTypeID is set, type-specific and branch-wide slots both apply.
func (r *TimeSlotRepository) FindActive(ctx context.Context, branchID int64, appointmentTypeID *int64) ([]domain.TimeSlotConfig, error) {
	q := r.db.WithContext(ctx).
		Where("branch_id = ? AND active = ?", branchID, true)
	if appointmentTypeID != nil {
		q = q.Where("appointment_type_id = ? OR appointment_type_id IS NULL", *appointmentTypeID)
	}

	var rows []domain.TimeSlotConfig
	if err := q.Order("time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TimeSlotRepository) Deactivate(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&domain.TimeSlotConfig{}).
		Where("id = ?", id).
		Update("active", false)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
