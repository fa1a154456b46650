package worker

// receipt_worker.go
// Processes top-up receipt jobs from QueueReceipts: renders a PDF receipt
// for the committed wallet transaction and emails it to the shop manager.
// Delivery is best-effort: the top-up is already committed, so failures only
// ever affect the email, never the ledger.

import (
	"context"
	"encoding/json"
	"fmt"

	"shopops/internal/infra"
	"shopops/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ReceiptJobPayload is the job envelope sent to QueueReceipts.
type ReceiptJobPayload struct {
	TransactionID string `json:"transaction_id"`
	Attempts      int    `json:"attempts,omitempty"`
}

// ReceiptWorker loads the transaction, renders the PDF, and sends it through
// the circuit breaker guarding SMTP. Failed sends go to the DLQ with their
// attempt count; the retry cron decides whether they come back.
type ReceiptWorker struct {
	walletRepo  repository.WalletRepository
	userRepo    repository.UserRepository
	mailer      *infra.Mailer
	cb          *infra.CircuitBreaker
	rdb         *redis.Client
	storagePath string
}

func NewReceiptWorker(
	walletRepo repository.WalletRepository,
	userRepo repository.UserRepository,
	mailer *infra.Mailer,
	cb *infra.CircuitBreaker,
	rdb *redis.Client,
	storagePath string,
) *ReceiptWorker {
	return &ReceiptWorker{
		walletRepo:  walletRepo,
		userRepo:    userRepo,
		mailer:      mailer,
		cb:          cb,
		rdb:         rdb,
		storagePath: storagePath,
	}
}

// Process renders and emails the receipt for one wallet transaction.
func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReceiptJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("receipt_worker: invalid payload")
		return
	}

	txn, err := w.walletRepo.FindTransactionByID(ctx, parseID(payload.TransactionID))
	if err != nil {
		log.Error().Err(err).Str("transaction_id", payload.TransactionID).
			Msg("receipt_worker: transaction not found — dropping job")
		return
	}
	if txn.Shop == nil || txn.Shop.ManagerID == nil {
		log.Warn().Str("transaction_id", payload.TransactionID).
			Msg("receipt_worker: shop has no manager — skipping receipt")
		return
	}

	manager, err := w.userRepo.FindByID(ctx, *txn.Shop.ManagerID)
	if err != nil {
		log.Warn().Err(err).Str("transaction_id", payload.TransactionID).
			Msg("receipt_worker: manager lookup failed — skipping receipt")
		return
	}

	pdfPath, err := infra.GenerateReceiptPDF(txn, w.storagePath)
	if err != nil {
		w.fail(ctx, payload, fmt.Sprintf("pdf generation: %v", err))
		return
	}

	subject := fmt.Sprintf("Wallet top-up receipt — %s", txn.Shop.Name)
	body := fmt.Sprintf(
		"A top-up of %s was credited to the wallet of %s (reference %q). The receipt is attached.",
		txn.Amount.StringFixed(2), txn.Shop.Name, txn.Reference,
	)

	sendErr := w.cb.Execute(func() error {
		return w.mailer.SendReceipt(manager.Email, subject, body, pdfPath)
	})
	if sendErr != nil {
		w.fail(ctx, payload, fmt.Sprintf("send: %v", sendErr))
		return
	}

	log.Info().
		Str("to", manager.Email).
		Str("transaction_id", payload.TransactionID).
		Msg("receipt_worker: receipt sent")
}

func parseID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}

func (w *ReceiptWorker) fail(ctx context.Context, payload ReceiptJobPayload, reason string) {
	payload.Attempts++
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("receipt_worker: failed to marshal DLQ payload")
		return
	}
	SendToDLQ(ctx, w.rdb, QueueReceipts, "receipt", data, reason, payload.Attempts)
}
