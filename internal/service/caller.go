package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Caller is the authenticated identity behind a request. Handlers build it
// from JWT claims and pass it explicitly into every mutating operation, so
// authorization rules stay testable without a real session layer.
type Caller struct {
	UserID uuid.UUID
	Role   string
}

// Authenticated reports whether the caller carries a real identity.
func (c Caller) Authenticated() bool { return c.UserID != uuid.Nil }

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
