package repository

import (
	"context"

	"shopops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CashierRepository interface {
	Create(ctx context.Context, c *model.Cashier) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cashier, error)
	// FindByIDFull preloads the shop and the linked user
	FindByIDFull(ctx context.Context, id uuid.UUID) (*model.Cashier, error)
	FindByEmail(ctx context.Context, email string) (*model.Cashier, error)
	List(ctx context.Context) ([]model.Cashier, error)
	CountByShop(ctx context.Context, shopID uuid.UUID) (int64, error)
	Update(ctx context.Context, c *model.Cashier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type cashierRepo struct{ db *gorm.DB }

func NewCashierRepository(db *gorm.DB) CashierRepository { return &cashierRepo{db: db} }

func (r *cashierRepo) Create(ctx context.Context, c *model.Cashier) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cashierRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cashier, error) {
	var c model.Cashier
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *cashierRepo) FindByIDFull(ctx context.Context, id uuid.UUID) (*model.Cashier, error) {
	var c model.Cashier
	err := r.db.WithContext(ctx).
		Preload("Shop").
		Preload("User").
		First(&c, id).Error
	return &c, err
}

func (r *cashierRepo) FindByEmail(ctx context.Context, email string) (*model.Cashier, error) {
	var c model.Cashier
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&c).Error
	return &c, err
}

func (r *cashierRepo) List(ctx context.Context) ([]model.Cashier, error) {
	var cashiers []model.Cashier
	err := r.db.WithContext(ctx).
		Preload("Shop").
		Preload("User").
		Order("created_at DESC").
		Find(&cashiers).Error
	return cashiers, err
}

func (r *cashierRepo) CountByShop(ctx context.Context, shopID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Cashier{}).Where("shop_id = ?", shopID).Count(&n).Error
	return n, err
}

func (r *cashierRepo) Update(ctx context.Context, c *model.Cashier) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cashierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Cashier{}, id).Error
}
