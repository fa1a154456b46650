package model

import (
	"time"

	"github.com/google/uuid"
)

// Cashier availability states. Transitions between them are unrestricted;
// IsActive is an orthogonal toggle.
const (
	StatusAvailable = "AVAILABLE"
	StatusOnBreak   = "ON_BREAK"
	StatusOffDuty   = "OFF_DUTY"
)

// Cashier is a shop employee record, optionally linked to a User account.
// A cashier with a non-nil UserID cannot be deleted until unlinked.
type Cashier struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string    `gorm:"not null"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Phone    *string
	IsActive bool       `gorm:"not null;default:true"`
	Status   string     `gorm:"type:varchar(20);not null;default:'AVAILABLE'"`
	ShopID   *uuid.UUID `gorm:"type:uuid;index"`
	// UserID is set at creation from the acting session and never changed after.
	UserID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Shop *Shop `gorm:"foreignKey:ShopID"`
	User *User `gorm:"foreignKey:UserID"`
}
