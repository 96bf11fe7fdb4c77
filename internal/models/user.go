package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AccountInternal = "internal"
	AccountPortal   = "portal"
	AccountPublic   = "public"
)

type User struct {
	ID          uuid.UUID `db:"id"           json:"id"`
	Name        string    `db:"name"         json:"name"`
	Email       string    `db:"email"        json:"email"`
	Password    string    `db:"password"     json:"password"`
	AccountType string    `db:"account_type" json:"accountType"`
	IsActive    bool      `db:"is_active"    json:"isActive"`
	CreatedAt   time.Time `db:"created_at"   json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updatedAt"`
}

// IsInternal reports whether sessions of this account may be revoked in
// bulk. Portal and public accounts are excluded.
func (u *User) IsInternal() bool {
	return u.AccountType == AccountInternal
}
