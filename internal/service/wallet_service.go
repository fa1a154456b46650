package service

import (
	"context"
	"errors"
	"time"

	"shopops/internal/apierror"
	"shopops/internal/dto"
	"shopops/internal/model"
	"shopops/internal/repository"
	"shopops/internal/worker"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type WalletService interface {
	TopUp(ctx context.Context, caller Caller, shopID uuid.UUID, req dto.TopUpRequest) (*dto.ShopResponse, error)
	ListTransactions(ctx context.Context, caller Caller) ([]dto.TransactionResponse, error)
}

type walletService struct {
	repo       repository.WalletRepository
	shopRepo   repository.ShopRepository
	dispatcher *worker.Dispatcher
	cache      *shopCache
}

func NewWalletService(
	repo repository.WalletRepository,
	shopRepo repository.ShopRepository,
	dispatcher *worker.Dispatcher,
	rdb *redis.Client,
) WalletService {
	return &walletService{repo: repo, shopRepo: shopRepo, dispatcher: dispatcher, cache: newShopCache(rdb)}
}

// ── TopUp ────────────────────────────────────────────────────────────────────
// The one real invariant in the system: the balance increment and the ledger
// row commit together or not at all. The increment happens at the SQL level
// so concurrent top-ups are serialized by the store.

func (s *walletService) TopUp(ctx context.Context, caller Caller, shopID uuid.UUID, req dto.TopUpRequest) (*dto.ShopResponse, error) {
	if !caller.Authenticated() {
		return nil, apierror.Unauthorized("Authentication required")
	}
	if !req.Amount.IsPositive() {
		return nil, apierror.Invalid("Amount must be positive")
	}

	if _, err := s.shopRepo.FindByID(ctx, shopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Shop not found")
		}
		return nil, apierror.Internal(err)
	}

	txn := &model.WalletTransaction{
		Amount:        req.Amount,
		Type:          model.TxTypeCredit,
		Method:        req.Method,
		Reference:     req.Reference,
		ShopID:        shopID,
		ProcessedByID: caller.UserID,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.IncrementBalanceTx(tx, shopID, req.Amount); err != nil {
			return err
		}
		return s.repo.CreateTransactionTx(tx, txn)
	})
	if txErr != nil {
		return nil, apierror.Internal(txErr)
	}

	s.cache.Invalidate(ctx, shopID.String())

	// Receipt email is best-effort — fire & forget, never affects the commit.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueReceipt(ctx, worker.ReceiptJobPayload{
			TransactionID: txn.ID.String(),
		})
	}

	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return shopToResponse(shop), nil
}

// ── ListTransactions ─────────────────────────────────────────────────────────
// Scoped by processor: only transactions the caller personally processed.

func (s *walletService) ListTransactions(ctx context.Context, caller Caller) ([]dto.TransactionResponse, error) {
	if !caller.Authenticated() {
		return nil, apierror.Unauthorized("Authentication required")
	}

	txns, err := s.repo.ListByProcessor(ctx, caller.UserID)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	resp := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		t := &txns[i]
		item := dto.TransactionResponse{
			ID:            t.ID.String(),
			Amount:        t.Amount,
			Type:          t.Type,
			Method:        t.Method,
			Reference:     t.Reference,
			ShopID:        t.ShopID.String(),
			ProcessedByID: t.ProcessedByID.String(),
			CreatedAt:     t.CreatedAt.Format(time.RFC3339),
		}
		if t.Shop != nil {
			item.ShopName = t.Shop.Name
		}
		resp = append(resp, item)
	}
	return resp, nil
}
