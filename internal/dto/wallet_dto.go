package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type TopUpRequest struct {
	Amount    decimal.Decimal `json:"amount"    validate:"required,gt=0"`
	Method    string          `json:"method"    validate:"required,oneof=bank_transfer cash online_payment"`
	Reference string          `json:"reference" validate:"required,min=2"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TransactionResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Method        string          `json:"method"`
	Reference     string          `json:"reference"`
	ShopID        string          `json:"shopId"`
	ShopName      string          `json:"shopName"`
	ProcessedByID string          `json:"processedById"`
	CreatedAt     string          `json:"createdAt"`
}
