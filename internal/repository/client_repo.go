package repository

import (
	"context"

	"gorm.io/gorm"

	"utilibook/internal/domain"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var c domain.Client
	tx := r.db.WithContext(ctx).First(&c, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *ClientRepository) GetByNumber(ctx context.Context, number string) (*domain.Client, error) {
	var c domain.Client
	tx := r.db.WithContext(ctx).Where("client_number = ?", number).First(&c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}
