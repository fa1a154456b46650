package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateShopRequest struct {
	Name             string          `json:"name"             validate:"required,min=3"`
	Location         string          `json:"location"         validate:"required,min=3"`
	ShopCommission   decimal.Decimal `json:"shopCommission"   validate:"min=0,max=100"`
	SystemCommission decimal.Decimal `json:"systemCommission" validate:"min=0,max=100"`
	WalletBalance    decimal.Decimal `json:"walletBalance"    validate:"min=0"`
	ManagerID        string          `json:"managerId"        validate:"required,uuid"`
}

// UpdateShopRequest deliberately has no managerId or walletBalance: manager
// reassignment is a separate dedicated operation, and balances only move
// through the wallet ledger.
type UpdateShopRequest struct {
	Name             string          `json:"name"             validate:"required,min=3"`
	Location         string          `json:"location"         validate:"required,min=3"`
	ShopCommission   decimal.Decimal `json:"shopCommission"   validate:"min=0,max=100"`
	SystemCommission decimal.Decimal `json:"systemCommission" validate:"min=0,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ManagerSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image,omitempty"`
	Role  string  `json:"role,omitempty"`
}

// ShopCashierEntry is a cashier row embedded in a shop detail response.
// Avatar and UserID are derived from the linked user account, if any.
type ShopCashierEntry struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	IsActive  bool    `json:"isActive"`
	Status    string  `json:"status"`
	Avatar    *string `json:"avatar"`
	UserID    *string `json:"userId"`
	CreatedAt string  `json:"createdAt"`
}

type ShopResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Location         string             `json:"location"`
	ShopCommission   decimal.Decimal    `json:"shopCommission"`
	SystemCommission decimal.Decimal    `json:"systemCommission"`
	WalletBalance    decimal.Decimal    `json:"walletBalance"`
	ManagerID        *string            `json:"managerId"`
	Manager          *ManagerSummary    `json:"manager,omitempty"`
	CashierCount     int                `json:"cashierCount"`
	Cashiers         []ShopCashierEntry `json:"cashiers,omitempty"`
	CreatedAt        string             `json:"createdAt"`
	UpdatedAt        string             `json:"updatedAt"`
}
