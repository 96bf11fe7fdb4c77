package auth

import (
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 7

type PasswordService interface {
	Hash(pswd string) (string, error)
	ComparePasswords(hashed, pswd []byte) error
}

type Password struct{}

func NewPassword() *Password {
	return &Password{}
}

func (p *Password) Hash(pswd string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pswd), bcryptCost)
	return string(bytes), err
}

func (p *Password) ComparePasswords(hashed, pswd []byte) error {
	if err := bcrypt.CompareHashAndPassword(hashed, pswd); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
