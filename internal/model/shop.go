package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shop represents a retail location with its own wallet.
// WalletBalance is only ever mutated through the wallet ledger (atomic
// increment + WalletTransaction row) — the generic edit path never writes it.
type Shop struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string    `gorm:"uniqueIndex;not null"`
	Location string    `gorm:"not null"`
	// Commission percentages in [0,100]
	ShopCommission   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	SystemCommission decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	WalletBalance    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ManagerID        *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Manager  *User     `gorm:"foreignKey:ManagerID"`
	Cashiers []Cashier `gorm:"foreignKey:ShopID"`
}
