package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var ErrLoginFailed = errors.New("login failed")
var ErrInvalidToken = errors.New("invalid token")
var ErrAccessDenied = errors.New("access denied")
var ErrMemberNotFound = errors.New("member not found")
var ErrEmailExists = errors.New("email already registered")

// Member is a registered account. Email is the immutable business key;
// uniqueness is enforced at sign-up and again by the store's unique index.
type Member struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Nickname     string    `json:"nickname"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
