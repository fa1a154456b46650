package repository

import (
	"context"

	"shopops/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletRepository owns the append-only transaction ledger. There are no
// update or delete methods on purpose.
type WalletRepository interface {
	// CreateTransactionTx inserts a ledger row inside an open transaction.
	CreateTransactionTx(tx *gorm.DB, t *model.WalletTransaction) error
	// IncrementBalanceTx applies a SQL-level increment so concurrent top-ups
	// against the same shop are serialized by the store, not read-then-write.
	IncrementBalanceTx(tx *gorm.DB, shopID uuid.UUID, amount decimal.Decimal) error
	FindTransactionByID(ctx context.Context, id uuid.UUID) (*model.WalletTransaction, error)
	ListByProcessor(ctx context.Context, userID uuid.UUID) ([]model.WalletTransaction, error)
	// SumByShop returns SUM(CREDIT) - SUM(DEBIT) for balance audits.
	SumByShop(ctx context.Context, shopID uuid.UUID) (decimal.Decimal, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type walletRepo struct{ db *gorm.DB }

func NewWalletRepository(db *gorm.DB) WalletRepository { return &walletRepo{db: db} }

func (r *walletRepo) DB() *gorm.DB { return r.db }

func (r *walletRepo) CreateTransactionTx(tx *gorm.DB, t *model.WalletTransaction) error {
	return tx.Create(t).Error
}

func (r *walletRepo) IncrementBalanceTx(tx *gorm.DB, shopID uuid.UUID, amount decimal.Decimal) error {
	return tx.Model(&model.Shop{}).
		Where("id = ?", shopID).
		UpdateColumn("wallet_balance", gorm.Expr("wallet_balance + ?", amount)).Error
}

func (r *walletRepo) FindTransactionByID(ctx context.Context, id uuid.UUID) (*model.WalletTransaction, error) {
	var t model.WalletTransaction
	err := r.db.WithContext(ctx).
		Preload("Shop").
		Preload("ProcessedBy").
		First(&t, id).Error
	return &t, err
}

func (r *walletRepo) ListByProcessor(ctx context.Context, userID uuid.UUID) ([]model.WalletTransaction, error) {
	var txns []model.WalletTransaction
	err := r.db.WithContext(ctx).
		Where("processed_by_id = ?", userID).
		Preload("Shop").
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}

func (r *walletRepo) SumByShop(ctx context.Context, shopID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.WalletTransaction{}).
		Select("COALESCE(SUM(CASE WHEN type = 'CREDIT' THEN amount ELSE -amount END), 0)").
		Where("shop_id = ?", shopID).
		Scan(&sum).Error
	if err != nil || !sum.Valid {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}
