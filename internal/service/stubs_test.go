package service

import (
	"context"
	"strings"

	"shopops/internal/model"
	"shopops/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────
// In-memory repository implementations. Not-found is reported as
// gorm.ErrRecordNotFound so services classify it the same way they would
// against a real store.

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) && u.IsActive {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.IsActive {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.Role == role && u.IsActive {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.IsActive = false
	return nil
}

func (r *stubUserRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.IsActive = true
	return nil
}

type stubShopRepo struct {
	shops map[uuid.UUID]*model.Shop
}

func newStubShopRepo() *stubShopRepo {
	return &stubShopRepo{shops: make(map[uuid.UUID]*model.Shop)}
}

func (r *stubShopRepo) Create(_ context.Context, s *model.Shop) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.shops[s.ID] = s
	return nil
}

func (r *stubShopRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Shop, error) {
	s, ok := r.shops[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubShopRepo) FindByIDFull(ctx context.Context, id uuid.UUID) (*model.Shop, error) {
	return r.FindByID(ctx, id)
}

func (r *stubShopRepo) FindByName(_ context.Context, name string) (*model.Shop, error) {
	for _, s := range r.shops {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubShopRepo) List(_ context.Context) ([]model.Shop, error) {
	var out []model.Shop
	for _, s := range r.shops {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubShopRepo) Update(_ context.Context, s *model.Shop) error {
	r.shops[s.ID] = s
	return nil
}

func (r *stubShopRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.shops, id)
	return nil
}

func (r *stubShopRepo) DB() *gorm.DB { return nil }

type stubCashierRepo struct {
	cashiers map[uuid.UUID]*model.Cashier
}

func newStubCashierRepo() *stubCashierRepo {
	return &stubCashierRepo{cashiers: make(map[uuid.UUID]*model.Cashier)}
}

func (r *stubCashierRepo) Create(_ context.Context, c *model.Cashier) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.cashiers[c.ID] = c
	return nil
}

func (r *stubCashierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cashier, error) {
	c, ok := r.cashiers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCashierRepo) FindByIDFull(ctx context.Context, id uuid.UUID) (*model.Cashier, error) {
	return r.FindByID(ctx, id)
}

func (r *stubCashierRepo) FindByEmail(_ context.Context, email string) (*model.Cashier, error) {
	for _, c := range r.cashiers {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCashierRepo) List(_ context.Context) ([]model.Cashier, error) {
	var out []model.Cashier
	for _, c := range r.cashiers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCashierRepo) CountByShop(_ context.Context, shopID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range r.cashiers {
		if c.ShopID != nil && *c.ShopID == shopID {
			n++
		}
	}
	return n, nil
}

func (r *stubCashierRepo) Update(_ context.Context, c *model.Cashier) error {
	r.cashiers[c.ID] = c
	return nil
}

func (r *stubCashierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.cashiers, id)
	return nil
}

// stubWalletRepo appends ledger rows and applies balance increments against
// the shop repo's in-memory state, mirroring what the SQL increment does.
type stubWalletRepo struct {
	shopRepo *stubShopRepo
	txns     []*model.WalletTransaction
}

func newStubWalletRepo(shopRepo *stubShopRepo) *stubWalletRepo {
	return &stubWalletRepo{shopRepo: shopRepo}
}

func (r *stubWalletRepo) CreateTransactionTx(_ *gorm.DB, t *model.WalletTransaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.txns = append(r.txns, t)
	return nil
}

func (r *stubWalletRepo) IncrementBalanceTx(_ *gorm.DB, shopID uuid.UUID, amount decimal.Decimal) error {
	s, ok := r.shopRepo.shops[shopID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.WalletBalance = s.WalletBalance.Add(amount)
	return nil
}

func (r *stubWalletRepo) FindTransactionByID(_ context.Context, id uuid.UUID) (*model.WalletTransaction, error) {
	for _, t := range r.txns {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubWalletRepo) ListByProcessor(_ context.Context, userID uuid.UUID) ([]model.WalletTransaction, error) {
	var out []model.WalletTransaction
	for i := len(r.txns) - 1; i >= 0; i-- {
		if r.txns[i].ProcessedByID == userID {
			out = append(out, *r.txns[i])
		}
	}
	return out, nil
}

func (r *stubWalletRepo) SumByShop(_ context.Context, shopID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, t := range r.txns {
		if t.ShopID != shopID {
			continue
		}
		if t.Type == model.TxTypeCredit {
			sum = sum.Add(t.Amount)
		} else {
			sum = sum.Sub(t.Amount)
		}
	}
	return sum, nil
}

func (r *stubWalletRepo) DB() *gorm.DB { return nil }

var (
	_ repository.UserRepository    = (*stubUserRepo)(nil)
	_ repository.ShopRepository    = (*stubShopRepo)(nil)
	_ repository.CashierRepository = (*stubCashierRepo)(nil)
	_ repository.WalletRepository  = (*stubWalletRepo)(nil)
)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedUser(repo *stubUserRepo, name, email, role string) *model.User {
	u := &model.User{ID: uuid.New(), Name: name, Email: email, Role: role, IsActive: true}
	repo.users[u.ID] = u
	return u
}

func seedShop(repo *stubShopRepo, name, location string, managerID *uuid.UUID) *model.Shop {
	s := &model.Shop{
		ID:            uuid.New(),
		Name:          name,
		Location:      location,
		WalletBalance: decimal.Zero,
		ManagerID:     managerID,
	}
	repo.shops[s.ID] = s
	return s
}
