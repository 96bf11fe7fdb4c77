package auth

import (
	"context"

	md "github.com/JMURv/device-sessions/internal/models"
)

// Identity gates privileged operations on other users' sessions.
type Identity struct{}

func NewIdentity() *Identity {
	return &Identity{}
}

// Confirm accepts only active internal accounts as actors.
func (Identity) Confirm(_ context.Context, u *md.User) bool {
	return u != nil && u.IsActive && u.IsInternal()
}
