package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// VerifyAction is the admin panel action applied to a user account.
type VerifyAction string

const (
	ActionVerify   VerifyAction = "verify"
	ActionUnverify VerifyAction = "unverify"
)

// User models a registered account. Username is the stable identity and is
// unique across the users collection.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}
