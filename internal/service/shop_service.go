package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"shopops/internal/apierror"
	"shopops/internal/dto"
	"shopops/internal/model"
	"shopops/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ShopService interface {
	List(ctx context.Context) ([]dto.ShopResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ShopResponse, error)
	Create(ctx context.Context, caller Caller, req dto.CreateShopRequest) (*dto.ShopResponse, error)
	Update(ctx context.Context, caller Caller, id uuid.UUID, req dto.UpdateShopRequest) (*dto.ShopResponse, error)
	Delete(ctx context.Context, caller Caller, id uuid.UUID) error
}

type shopService struct {
	repo     repository.ShopRepository
	userRepo repository.UserRepository
	cache    *shopCache
}

func NewShopService(repo repository.ShopRepository, userRepo repository.UserRepository, rdb *redis.Client) ShopService {
	return &shopService{repo: repo, userRepo: userRepo, cache: newShopCache(rdb)}
}

// ── List ─────────────────────────────────────────────────────────────────────

func (s *shopService) List(ctx context.Context) ([]dto.ShopResponse, error) {
	shops, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.ShopResponse, 0, len(shops))
	for i := range shops {
		r := shopToResponse(&shops[i])
		r.CashierCount = len(shops[i].Cashiers)
		r.Cashiers = nil // list view only carries the count
		resp = append(resp, *r)
	}
	return resp, nil
}

// ── Get ──────────────────────────────────────────────────────────────────────

func (s *shopService) Get(ctx context.Context, id uuid.UUID) (*dto.ShopResponse, error) {
	if cached, ok := s.cache.Get(ctx, id.String()); ok {
		return cached, nil
	}

	shop, err := s.repo.FindByIDFull(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Shop not found")
		}
		return nil, apierror.Internal(err)
	}

	resp := shopToResponse(shop)
	resp.CashierCount = len(shop.Cashiers)
	resp.Cashiers = make([]dto.ShopCashierEntry, 0, len(shop.Cashiers))
	for i := range shop.Cashiers {
		c := &shop.Cashiers[i]
		entry := dto.ShopCashierEntry{
			ID:        c.ID.String(),
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			IsActive:  c.IsActive,
			Status:    c.Status,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		}
		if c.User != nil {
			entry.Avatar = c.User.Image
			uid := c.User.ID.String()
			entry.UserID = &uid
		}
		resp.Cashiers = append(resp.Cashiers, entry)
	}

	s.cache.Set(ctx, id.String(), resp)
	return resp, nil
}

// ── Create ───────────────────────────────────────────────────────────────────
// ADMIN only. Duplicate names are rejected case-insensitively.

func (s *shopService) Create(ctx context.Context, caller Caller, req dto.CreateShopRequest) (*dto.ShopResponse, error) {
	if !caller.Authenticated() {
		return nil, apierror.Unauthorized("Authentication required")
	}
	if caller.Role != model.RoleAdmin {
		return nil, apierror.Forbidden("Only admins can create shops")
	}

	managerID, err := uuid.Parse(req.ManagerID)
	if err != nil {
		return nil, apierror.Invalid("managerId is not a valid id")
	}
	manager, err := s.userRepo.FindByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Invalid("managerId does not reference an existing user")
		}
		return nil, apierror.Internal(err)
	}

	name := strings.TrimSpace(req.Name)
	location := strings.TrimSpace(req.Location)
	if name == "" || location == "" {
		return nil, apierror.Invalid("Name and location are required")
	}

	if existing, err := s.repo.FindByName(ctx, name); err == nil && existing != nil {
		return nil, apierror.Conflict("A shop with that name already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	shop := &model.Shop{
		Name:             name,
		Location:         location,
		ShopCommission:   req.ShopCommission,
		SystemCommission: req.SystemCommission,
		WalletBalance:    req.WalletBalance,
		ManagerID:        &manager.ID,
	}
	if err := s.repo.Create(ctx, shop); err != nil {
		return nil, apierror.Internal(err)
	}

	shop.Manager = manager
	return shopToResponse(shop), nil
}

// ── Update ───────────────────────────────────────────────────────────────────
// ManagerID and WalletBalance are untouchable here: manager changes go through
// a dedicated operation, balances only move through the wallet ledger.

func (s *shopService) Update(ctx context.Context, caller Caller, id uuid.UUID, req dto.UpdateShopRequest) (*dto.ShopResponse, error) {
	if !caller.Authenticated() {
		return nil, apierror.Unauthorized("Authentication required")
	}

	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Shop not found")
		}
		return nil, apierror.Internal(err)
	}

	name := strings.TrimSpace(req.Name)
	location := strings.TrimSpace(req.Location)
	if name == "" || location == "" {
		return nil, apierror.Invalid("Name and location are required")
	}

	if !strings.EqualFold(name, shop.Name) {
		if existing, err := s.repo.FindByName(ctx, name); err == nil && existing != nil && existing.ID != id {
			return nil, apierror.Conflict("A shop with that name already exists")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Internal(err)
		}
	}

	shop.Name = name
	shop.Location = location
	shop.ShopCommission = req.ShopCommission
	shop.SystemCommission = req.SystemCommission

	if err := s.repo.Update(ctx, shop); err != nil {
		return nil, apierror.Internal(err)
	}

	s.cache.Invalidate(ctx, id.String())
	return shopToResponse(shop), nil
}

// ── Delete ───────────────────────────────────────────────────────────────────

func (s *shopService) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	if !caller.Authenticated() {
		return apierror.Unauthorized("Authentication required")
	}

	shop, err := s.repo.FindByIDFull(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Shop not found")
		}
		return apierror.Internal(err)
	}

	if len(shop.Cashiers) > 0 {
		return apierror.Conflict("Shop has active cashiers")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	s.cache.Invalidate(ctx, id.String())
	return nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func shopToResponse(s *model.Shop) *dto.ShopResponse {
	resp := &dto.ShopResponse{
		ID:               s.ID.String(),
		Name:             s.Name,
		Location:         s.Location,
		ShopCommission:   s.ShopCommission,
		SystemCommission: s.SystemCommission,
		WalletBalance:    s.WalletBalance,
		CreatedAt:        s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        s.UpdatedAt.Format(time.RFC3339),
	}
	if s.ManagerID != nil {
		mid := s.ManagerID.String()
		resp.ManagerID = &mid
	}
	if s.Manager != nil {
		resp.Manager = &dto.ManagerSummary{
			ID:    s.Manager.ID.String(),
			Name:  s.Manager.Name,
			Email: s.Manager.Email,
			Image: s.Manager.Image,
			Role:  s.Manager.Role,
		}
	}
	return resp
}
