package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCashierRequest struct {
	Name   string  `json:"name"   validate:"required,min=2"`
	Email  string  `json:"email"  validate:"required,email"`
	Phone  *string `json:"phone"`
	ShopID string  `json:"shopId" validate:"required,uuid"`
}

type UpdateCashierRequest struct {
	Name     string  `json:"name"     validate:"required,min=2"`
	Email    string  `json:"email"    validate:"required,email"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"isActive"`
	Status   string  `json:"status"   validate:"omitempty,oneof=AVAILABLE ON_BREAK OFF_DUTY"`
	ShopID   string  `json:"shopId"   validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ShopSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

type UserSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image,omitempty"`
	Role  string  `json:"role,omitempty"`
}

type CashierResponse struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Phone    *string      `json:"phone"`
	IsActive bool         `json:"isActive"`
	Status   string       `json:"status"`
	ShopID   *string      `json:"shopId"`
	Shop     *ShopSummary `json:"shop,omitempty"`
	User     *UserSummary `json:"user,omitempty"`
	// Derived from the linked user account, if any
	Avatar    *string `json:"avatar"`
	UserID    *string `json:"userId"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}
