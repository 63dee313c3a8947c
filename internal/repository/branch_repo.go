package repository

import (
	"context"

	"gorm.io/gorm"

	"utilibook/internal/domain"
)

type BranchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

func (r *BranchRepository) Create(ctx context.Context, b *domain.Branch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BranchRepository) GetByID(ctx context.Context, id int64) (*domain.Branch, error) {
	var b domain.Branch
	tx := r.db.WithContext(ctx).First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BranchRepository) List(ctx context.Context) ([]domain.Branch, error) {
	var rows []domain.Branch
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BranchRepository) Update(ctx context.Context, b *domain.Branch) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BranchRepository) ExistsActive(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Branch{}).
		Where("id = ? AND active = ?", id, true).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
