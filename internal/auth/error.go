package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	// ErrValidatorMissing indicates a misconfigured deployment, not a bad
	// request.
	ErrValidatorMissing = errors.New("validator configuration missing")
)
