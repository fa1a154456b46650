package repository

import (
	"context"

	"shopops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopRepository interface {
	Create(ctx context.Context, s *model.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Shop, error)
	// FindByIDFull preloads manager, cashiers, and the cashiers' users
	FindByIDFull(ctx context.Context, id uuid.UUID) (*model.Shop, error)
	FindByName(ctx context.Context, name string) (*model.Shop, error)
	List(ctx context.Context) ([]model.Shop, error)
	Update(ctx context.Context, s *model.Shop) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type shopRepo struct{ db *gorm.DB }

func NewShopRepository(db *gorm.DB) ShopRepository { return &shopRepo{db: db} }

func (r *shopRepo) DB() *gorm.DB { return r.db }

func (r *shopRepo) Create(ctx context.Context, s *model.Shop) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *shopRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Shop, error) {
	var s model.Shop
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *shopRepo) FindByIDFull(ctx context.Context, id uuid.UUID) (*model.Shop, error) {
	var s model.Shop
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Preload("Cashiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("cashiers.created_at DESC")
		}).
		Preload("Cashiers.User").
		First(&s, id).Error
	return &s, err
}

func (r *shopRepo) FindByName(ctx context.Context, name string) (*model.Shop, error) {
	var s model.Shop
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&s).Error
	return &s, err
}

func (r *shopRepo) List(ctx context.Context) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).
		Preload("Cashiers").
		Preload("Manager").
		Order("created_at DESC").
		Find(&shops).Error
	return shops, err
}

func (r *shopRepo) Update(ctx context.Context, s *model.Shop) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *shopRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Shop{}, id).Error
}
