package repository

import (
	"context"

	"gorm.io/gorm"

	"utilibook/internal/domain"
)

type HolidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

func (r *HolidayRepository) Create(ctx context.Context, h *domain.Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HolidayRepository) GetByID(ctx context.Context, id int64) (*domain.Holiday, error) {
	var h domain.Holiday
	tx := r.db.WithContext(ctx).First(&h, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &h, nil
}

// ExistsActive checks the per-scope uniqueness rule: one active holiday per
// (date) for NATIONAL/COMPANY, per (date, branch) for LOCAL.
func (r *HolidayRepository) ExistsActive(ctx context.Context, date string, typ domain.HolidayType, branchID *int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.Holiday{}).
		Where("date = ? AND type = ? AND active = ?", date, typ, true)
	if typ == domain.HolidayLocal && branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}

	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// FindActiveForDate returns every active holiday on the date; callers filter
// by AppliesToBranch.
func (r *HolidayRepository) FindActiveForDate(ctx context.Context, date string) ([]domain.Holiday, error) {
	var rows []domain.Holiday
	err := r.db.WithContext(ctx).
		Where("date = ? AND active = ?", date, true).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindInRange returns active holidays with start <= date <= end. ISO dates
// compare correctly as strings. When branchID is set, LOCAL holidays of other
// branches are excluded.
func (r *HolidayRepository) FindInRange(ctx context.Context, start, end string, branchID *int64) ([]domain.Holiday, error) {
	q := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ? AND active = ?", start, end, true)
	if branchID != nil {
		q = q.Where("type <> ? OR branch_id = ?", domain.HolidayLocal, *branchID)
	}

	var rows []domain.Holiday
	if err := q.Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *HolidayRepository) Update(ctx context.Context, h *domain.Holiday) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HolidayRepository) Deactivate(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&domain.Holiday{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
