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
	"gorm.io/gorm"
)

type CashierService interface {
	List(ctx context.Context) ([]dto.CashierResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CashierResponse, error)
	Create(ctx context.Context, caller Caller, req dto.CreateCashierRequest) (*dto.CashierResponse, error)
	Update(ctx context.Context, caller Caller, id uuid.UUID, req dto.UpdateCashierRequest) (*dto.CashierResponse, error)
	Delete(ctx context.Context, caller Caller, id uuid.UUID) error
}

type cashierService struct {
	repo     repository.CashierRepository
	shopRepo repository.ShopRepository
}

func NewCashierService(repo repository.CashierRepository, shopRepo repository.ShopRepository) CashierService {
	return &cashierService{repo: repo, shopRepo: shopRepo}
}

// ── List ─────────────────────────────────────────────────────────────────────

func (s *cashierService) List(ctx context.Context) ([]dto.CashierResponse, error) {
	cashiers, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.CashierResponse, 0, len(cashiers))
	for i := range cashiers {
		resp = append(resp, *cashierToResponse(&cashiers[i]))
	}
	return resp, nil
}

// ── Get ──────────────────────────────────────────────────────────────────────

func (s *cashierService) Get(ctx context.Context, id uuid.UUID) (*dto.CashierResponse, error) {
	cashier, err := s.repo.FindByIDFull(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Cashier not found")
		}
		return nil, apierror.Internal(err)
	}
	return cashierToResponse(cashier), nil
}

// ── Create ───────────────────────────────────────────────────────────────────
// The creating session's user id is written as the cashier's linked user.
// The link is set once at creation and never changed by Update.

func (s *cashierService) Create(ctx context.Context, caller Caller, req dto.CreateCashierRequest) (*dto.CashierResponse, error) {
	if !caller.Authenticated() {
		return nil, apierror.Unauthorized("Authentication required")
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.ShopID == "" {
		return nil, apierror.Invalid("Name, email and shopId are required")
	}

	shopID, err := uuid.Parse(req.ShopID)
	if err != nil {
		return nil, apierror.Invalid("shopId is not a valid id")
	}
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Invalid("shopId does not reference an existing shop")
		}
		return nil, apierror.Internal(err)
	}

	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, apierror.Conflict("A cashier with that email already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	var phone *string
	if req.Phone != nil {
		p := strings.TrimSpace(*req.Phone)
		if p != "" {
			phone = &p
		}
	}

	userID := caller.UserID
	cashier := &model.Cashier{
		Name:     name,
		Email:    email,
		Phone:    phone,
		IsActive: true,
		Status:   model.StatusAvailable,
		ShopID:   &shop.ID,
		UserID:   &userID,
	}
	if err := s.repo.Create(ctx, cashier); err != nil {
		return nil, apierror.Internal(err)
	}

	cashier.Shop = shop
	return cashierToResponse(cashier), nil
}

// ── Update ───────────────────────────────────────────────────────────────────
// Status transitions are unrestricted; UserID is never touched here.

func (s *cashierService) Update(ctx context.Context, caller Caller, id uuid.UUID, req dto.UpdateCashierRequest) (*dto.CashierResponse, error) {
	if !caller.Authenticated() {
		return nil, apierror.Unauthorized("Authentication required")
	}

	cashier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Cashier not found")
		}
		return nil, apierror.Internal(err)
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return nil, apierror.Invalid("Name and email are required")
	}

	if !strings.EqualFold(email, cashier.Email) {
		if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil && existing.ID != id {
			return nil, apierror.Conflict("A cashier with that email already exists")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Internal(err)
		}
	}

	cashier.Name = name
	cashier.Email = email
	if req.Phone != nil {
		p := strings.TrimSpace(*req.Phone)
		if p == "" {
			cashier.Phone = nil
		} else {
			cashier.Phone = &p
		}
	}
	if req.IsActive != nil {
		cashier.IsActive = *req.IsActive
	}
	if req.Status != "" {
		cashier.Status = req.Status
	}
	if req.ShopID != "" {
		shopID, err := uuid.Parse(req.ShopID)
		if err != nil {
			return nil, apierror.Invalid("shopId is not a valid id")
		}
		if _, err := s.shopRepo.FindByID(ctx, shopID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.Invalid("shopId does not reference an existing shop")
			}
			return nil, apierror.Internal(err)
		}
		cashier.ShopID = &shopID
	}

	if err := s.repo.Update(ctx, cashier); err != nil {
		return nil, apierror.Internal(err)
	}

	// Reload with shop summary for the response
	updated, err := s.repo.FindByIDFull(ctx, id)
	if err != nil {
		return cashierToResponse(cashier), nil
	}
	return cashierToResponse(updated), nil
}

// ── Delete ───────────────────────────────────────────────────────────────────
// Deleting never cascades through the user link: a linked cashier must be
// unlinked first.

func (s *cashierService) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	if !caller.Authenticated() {
		return apierror.Unauthorized("Authentication required")
	}

	cashier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Cashier not found")
		}
		return apierror.Internal(err)
	}

	if cashier.UserID != nil {
		return apierror.Conflict("This cashier is linked to a user account. Unlink the user first.")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func cashierToResponse(c *model.Cashier) *dto.CashierResponse {
	resp := &dto.CashierResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		IsActive:  c.IsActive,
		Status:    c.Status,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
	if c.ShopID != nil {
		sid := c.ShopID.String()
		resp.ShopID = &sid
	}
	if c.Shop != nil {
		resp.Shop = &dto.ShopSummary{
			ID:       c.Shop.ID.String(),
			Name:     c.Shop.Name,
			Location: c.Shop.Location,
		}
	}
	if c.User != nil {
		resp.User = &dto.UserSummary{
			ID:    c.User.ID.String(),
			Name:  c.User.Name,
			Email: c.User.Email,
			Image: c.User.Image,
			Role:  c.User.Role,
		}
		resp.Avatar = c.User.Image
	}
	if c.UserID != nil {
		uid := c.UserID.String()
		resp.UserID = &uid
	}
	return resp
}
