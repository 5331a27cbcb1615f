package utils

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PasswordChecker decides how a password is stored and how a login attempt
// is compared against the stored value.
type PasswordChecker interface {
	Prepare(password string) (string, error)
	Matches(submitted, stored string) bool
}

// PlainPasswords stores passwords exactly as submitted and compares them for
// exact equality. This is the default and keeps existing user documents
// readable; it offers no protection if the database leaks.
type PlainPasswords struct{}

func (PlainPasswords) Prepare(password string) (string, error) { return password, nil }

func (PlainPasswords) Matches(submitted, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(stored)) == 1
}

// BcryptPasswords hashes on registration and verifies with bcrypt. Users
// registered while PlainPasswords was active cannot log in after switching.
type BcryptPasswords struct {
	Cost int
}

// DefaultBcryptCost is the work factor used when HASH_PASSWORDS is enabled.
const DefaultBcryptCost = 14

func NewBcryptPasswords(cost int) BcryptPasswords {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return BcryptPasswords{Cost: cost}
}

// Prepare hashes a given password using bcrypt.
func (b BcryptPasswords) Prepare(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), b.Cost)
	return string(bytes), err
}

// Matches compares a plain password with its hashed version.
func (b BcryptPasswords) Matches(submitted, stored string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted))
	return err == nil
}
