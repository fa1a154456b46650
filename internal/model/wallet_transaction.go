package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types. DEBIT is reserved: no current operation produces one,
// but the ledger sum (CREDIT - DEBIT) stays correct if a future one does.
const (
	TxTypeCredit = "CREDIT"
	TxTypeDebit  = "DEBIT"
)

// Top-up payment methods.
const (
	MethodBankTransfer  = "bank_transfer"
	MethodCash          = "cash"
	MethodOnlinePayment = "online_payment"
)

// WalletTransaction is an immutable event in a shop's wallet ledger.
// Rows are NEVER updated or deleted — they are the audit trail for every
// balance change. The invariant: at any point a shop's WalletBalance equals
// the sum of its CREDIT amounts minus the sum of its DEBIT amounts.
type WalletTransaction struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Type          string          `gorm:"type:varchar(10);not null"`
	Method        string          `gorm:"type:varchar(20);not null"`
	Reference     string          `gorm:"not null"`
	ShopID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProcessedByID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time

	Shop        *Shop `gorm:"foreignKey:ShopID"`
	ProcessedBy *User `gorm:"foreignKey:ProcessedByID"`
}
